package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gift-registry/internal/logger"
	"github.com/sbilibin2017/gift-registry/pkg/models"
)

// GiftIdeaUpdater defines the write operation backing the gift update.
type GiftIdeaUpdater interface {
	Update(ctx context.Context, gift *models.GiftIdeaDB) (*models.GiftIdeaDB, error)
}

// NewUpdateGiftHandler returns an HTTP handler replacing a gift idea's
// columns, keyed by id. Ownership is not checked server-side; gating
// lives in the client.
// @Summary Update a gift idea
// @Tags gifts
// @Accept json
// @Produce json
// @Param giftIdea body models.GiftIdeaDB true "Replacement gift idea, keyed by id"
// @Success 200 {object} models.GiftIdeaDB "Updated gift idea"
// @Failure 400 {string} string "Invalid request body"
// @Failure 404 {string} string "No gift idea with that id"
// @Router /v1/gifts/update [patch]
func NewUpdateGiftHandler(writer GiftIdeaUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.GiftIdeaDB
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		gift, err := writer.Update(r.Context(), &req)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprintf(w, "No gift idea found with uid: %d", req.ID)
				return
			}
			logger.Log.Errorw("update gift idea failed", "err", err)
			w.WriteHeader(storeErrorStatus(err))
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(gift)
	}
}
