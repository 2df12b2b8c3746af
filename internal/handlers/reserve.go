package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gift-registry/internal/logger"
	"github.com/sbilibin2017/gift-registry/pkg/models"
	"github.com/sbilibin2017/gift-registry/internal/services"
)

// Reserver defines the interface that the reservation service must implement.
type Reserver interface {
	Reserve(ctx context.Context, giftID, userID int64) (*models.GiftIdeaResponseBody, error)
	Unreserve(ctx context.Context, giftID int64) (*models.GiftIdeaResponseBody, error)
}

// NewReserveHandler returns an HTTP handler claiming a gift idea for the
// given user. Reserving an already-reserved gift overwrites the previous
// holder; concurrent claims race with last writer wins.
// @Summary Reserve a gift idea
// @Tags gifts
// @Produce json
// @Param giftId path int true "Gift idea id"
// @Param userId path int true "Reserving user id"
// @Success 200 {object} models.GiftIdeaResponseBody "Gift idea with its new holder"
// @Failure 400 {string} string "Invalid id"
// @Failure 404 {string} string "No gift idea with that id"
// @Router /v1/gifts/reserve/{giftId}/{userId} [patch]
func NewReserveHandler(svc Reserver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		giftID, err := strconv.ParseInt(chi.URLParam(r, "giftId"), 10, 64)
		if err != nil {
			http.Error(w, "invalid gift idea id", http.StatusBadRequest)
			return
		}
		userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
		if err != nil {
			http.Error(w, "invalid user id", http.StatusBadRequest)
			return
		}

		gift, err := svc.Reserve(r.Context(), giftID, userID)
		if err != nil {
			if errors.Is(err, services.ErrGiftIdeaNotFound) {
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprintf(w, "No gift idea found with uid: %d", giftID)
				return
			}
			logger.Log.Errorw("reserve failed", "err", err)
			w.WriteHeader(storeErrorStatus(err))
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(gift)
	}
}

// NewUnreserveHandler returns an HTTP handler clearing a gift idea's
// reservation. Any caller may clear any reservation.
// @Summary Unreserve a gift idea
// @Tags gifts
// @Produce json
// @Param giftId path int true "Gift idea id"
// @Success 200 {object} models.GiftIdeaResponseBody "Gift idea, reservation cleared"
// @Failure 400 {string} string "Invalid id"
// @Failure 404 {string} string "No gift idea with that id"
// @Router /v1/gifts/unreserve/{giftId} [patch]
func NewUnreserveHandler(svc Reserver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		giftID, err := strconv.ParseInt(chi.URLParam(r, "giftId"), 10, 64)
		if err != nil {
			http.Error(w, "invalid gift idea id", http.StatusBadRequest)
			return
		}

		gift, err := svc.Unreserve(r.Context(), giftID)
		if err != nil {
			if errors.Is(err, services.ErrGiftIdeaNotFound) {
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprintf(w, "No gift idea found with uid: %d", giftID)
				return
			}
			logger.Log.Errorw("unreserve failed", "err", err)
			w.WriteHeader(storeErrorStatus(err))
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(gift)
	}
}
