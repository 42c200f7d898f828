package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/decodeat/recommendation-service/internal/command"
	"github.com/decodeat/recommendation-service/internal/domain"
)

type PreferenceProfile struct {
	Builder command.Command[command.BuildPreferenceProfileRequest, domain.PreferenceProfile]
}

type PreferenceProfileRequestBody struct {
	UserID       int64               `json:"user_id"`
	BehaviorData []BehaviorEventBody `json:"behavior_data"`
}

func (c PreferenceProfile) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body PreferenceProfileRequestBody
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

	profile, err := c.Builder.Execute(r.Context(), command.BuildPreferenceProfileRequest{
		UserID: body.UserID,
		Events: events,
	})
	if err != nil {
		ctx := r.Context()
		domain.LoggerFromContext(ctx).ErrorContext(ctx, "unable to build preference profile", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, profile)
}
