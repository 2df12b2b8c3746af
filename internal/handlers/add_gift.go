package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gift-registry/internal/logger"
	"github.com/sbilibin2017/gift-registry/pkg/models"
)

// GiftIdeaSaver defines the write operation backing gift creation.
type GiftIdeaSaver interface {
	Save(ctx context.Context, gift *models.GiftIdeaRequestBody) (*models.GiftIdeaDB, error)
}

// NewAddGiftHandler returns an HTTP handler creating a gift idea. The
// created row starts unreserved, timestamps assigned server-side.
// @Summary Add a gift idea
// @Tags gifts
// @Accept json
// @Produce json
// @Param giftIdeaRequest body models.GiftIdeaRequestBody true "New gift idea"
// @Success 200 {object} models.GiftIdeaDB "Created gift idea"
// @Failure 400 {string} string "Invalid request body"
// @Router /v1/gifts/add [post]
func NewAddGiftHandler(writer GiftIdeaSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.GiftIdeaRequestBody
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		gift, err := writer.Save(r.Context(), &req)
		if err != nil {
			logger.Log.Errorw("add gift idea failed", "err", err)
			w.WriteHeader(storeErrorStatus(err))
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(gift)
	}
}
