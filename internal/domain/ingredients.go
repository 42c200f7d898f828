package domain

import "strings"

// DefaultMainIngredientCount is how many principal ingredients a product
// keeps for similarity comparison.
const DefaultMainIngredientCount = 5

// ExtractMainIngredients reduces an ingredient list to its first maxCount
// distinct members. Entries are trimmed, empty entries skipped, and
// duplicates dropped case-insensitively while the first-seen casing and the
// original order are preserved.
func ExtractMainIngredients(ingredients []string, maxCount int) []string {
	if len(ingredients) == 0 || maxCount <= 0 {
		return nil
	}

	seen := make(map[string]struct{}, maxCount)
	var main []string

	for _, ingredient := range ingredients {
		cleaned := strings.TrimSpace(ingredient)
		if cleaned == "" {
			continue
		}

		lower := strings.ToLower(cleaned)
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		main = append(main, cleaned)

		if len(main) >= maxCount {
			break
		}
	}

	return main
}
