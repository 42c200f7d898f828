package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/decodeat/recommendation-service/internal/command"
	"github.com/decodeat/recommendation-service/internal/domain"
)

type RecommendUser struct {
	Recommender command.Command[command.RecommendByUserRequest, command.RecommendationSet]
}

type RecommendUserRequestBody struct {
	UserID       int64               `json:"user_id"`
	BehaviorData []BehaviorEventBody `json:"behavior_data"`
	Limit        *int                `json:"limit,omitempty"`
}

func (c RecommendUser) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body RecommendUserRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, r, fmt.Errorf("decoding request body: %w", err))
		return
	}

	if body.UserID <= 0 {
		writeBadRequest(w, r, fmt.Errorf("invalid user_id [%d]", body.UserID))
		return
	}

	events, err := parseBehaviorEvents(body.BehaviorData)
	if err != nil {
		writeBadRequest(w, r, err)
		return
	}

	limit, err := parseLimit(body.Limit, defaultUserBasedLimit)
	if err != nil {
		writeBadRequest(w, r, err)
		return
	}

	set, err := c.Recommender.Execute(r.Context(), command.RecommendByUserRequest{
		UserID: body.UserID,
		Events: events,
		Limit:  limit,
	})
	if err != nil {
		ctx := r.Context()
		domain.LoggerFromContext(ctx).ErrorContext(ctx, "unable to recommend by user", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := recommendationResponse(set)
	response.UserID = &body.UserID

	writeJSON(w, r, http.StatusOK, response)
}
