package controller

import (
	"fmt"
	"time"

	"github.com/decodeat/recommendation-service/internal/domain"
)

const (
	minLimit = 1
	maxLimit = 50

	defaultProductBasedLimit = 15
	defaultUserBasedLimit    = 20
)

// BehaviorEventBody is one interaction in a request's behavior history.
type BehaviorEventBody struct {
	ProductID    int64   `json:"product_id"`
	BehaviorType string  `json:"behavior_type"`
	Timestamp    *string `json:"timestamp,omitempty"`
}

func parseLimit(limit *int, fallback int) (int, error) {
	if limit == nil {
		return fallback, nil
	}
	if *limit < minLimit || *limit > maxLimit {
		return 0, fmt.Errorf("limit [%d] out of range [%d..%d]", *limit, minLimit, maxLimit)
	}
	return *limit, nil
}

func parseBehaviorEvents(bodies []BehaviorEventBody) ([]domain.BehaviorEvent, error) {
	if len(bodies) == 0 {
		return nil, fmt.Errorf("behavior_data must contain at least one event")
	}

	events := make([]domain.BehaviorEvent, 0, len(bodies))
	for i, body := range bodies {
		if body.ProductID <= 0 {
			return nil, fmt.Errorf("behavior_data[%d]: invalid product_id [%d]", i, body.ProductID)
		}

		behaviorType := domain.ParseBehaviorType(body.BehaviorType)
		switch behaviorType {
		case domain.BehaviorView, domain.BehaviorLike, domain.BehaviorRegister, domain.BehaviorSearch:
		default:
			return nil, fmt.Errorf("behavior_data[%d]: unknown behavior_type [%s]", i, body.BehaviorType)
		}

		event := domain.BehaviorEvent{
			ProductID: body.ProductID,
			Type:      behaviorType,
		}
		if body.Timestamp != nil {
			ts, err := time.Parse(time.RFC3339, *body.Timestamp)
			if err != nil {
				return nil, fmt.Errorf("behavior_data[%d]: parsing timestamp: %w", i, err)
			}
			event.Timestamp = &ts
		}

		events = append(events, event)
	}

	return events, nil
}
