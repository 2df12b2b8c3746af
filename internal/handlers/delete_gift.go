package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gift-registry/internal/logger"
)

// GiftIdeaDeleter defines the write operation backing gift deletion.
type GiftIdeaDeleter interface {
	Delete(ctx context.Context, id int64) (bool, error)
}

// NewDeleteGiftHandler returns an HTTP handler removing a gift idea.
// The response body is a bare boolean: true iff exactly one row was
// removed. Deleting a missing id returns false, not an error.
// @Summary Delete a gift idea
// @Tags gifts
// @Produce json
// @Param giftId path int true "Gift idea id"
// @Success 200 {boolean} boolean "True iff one row was removed"
// @Failure 400 {string} string "Invalid id"
// @Router /v1/gifts/delete/{giftId} [delete]
func NewDeleteGiftHandler(writer GiftIdeaDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		giftID, err := strconv.ParseInt(chi.URLParam(r, "giftId"), 10, 64)
		if err != nil {
			http.Error(w, "invalid gift idea id", http.StatusBadRequest)
			return
		}

		deleted, err := writer.Delete(r.Context(), giftID)
		if err != nil {
			logger.Log.Errorw("delete gift idea failed", "err", err)
			w.WriteHeader(storeErrorStatus(err))
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(deleted)
	}
}
