package domain

// EmbeddingDimension is the contract dimension for every product embedding
// and preference vector in the system.
const EmbeddingDimension = 384

// NormalizeEmbedding forces a vector to the contract dimension: longer
// vectors are truncated, shorter ones zero-padded. A nil input becomes the
// zero vector.
func NormalizeEmbedding(vector []float32) []float32 {
	normalized := make([]float32, EmbeddingDimension)
	copy(normalized, vector)
	return normalized
}

// ZeroEmbedding returns the zero vector at the contract dimension.
func ZeroEmbedding() []float32 {
	return make([]float32, EmbeddingDimension)
}

// WeightedVector pairs an embedding with the interest weight of the behavior
// that produced it.
type WeightedVector struct {
	Vector []float32
	Weight float64
}

// WeightedAverageVector computes the weight-normalized average of the given
// vectors. A single entry averages to exactly its own vector, the weight
// cancelling out.
//
// Returns nil if vectors is empty or all weights sum to zero.
func WeightedAverageVector(vectors []WeightedVector) []float32 {
	if len(vectors) == 0 {
		return nil
	}

	var weightedSum []float32
	var totalWeight float64

	for _, v := range vectors {
		if weightedSum == nil {
			weightedSum = make([]float32, len(v.Vector))
		}
		for i, val := range v.Vector {
			weightedSum[i] += float32(v.Weight) * val
		}
		totalWeight += v.Weight
	}

	if totalWeight == 0 {
		return nil
	}

	result := make([]float32, len(weightedSum))
	for i, val := range weightedSum {
		result[i] = val / float32(totalWeight)
	}

	return result
}

// DistanceToSimilarity converts a vector store distance into a similarity
// score in [0,1], where 0 distance means identical.
func DistanceToSimilarity(distance float64) float64 {
	if s := 1 - distance; s > 0 {
		return s
	}
	return 0
}
