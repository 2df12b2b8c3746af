package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sbilibin2017/gift-registry/internal/logger"
	"github.com/sbilibin2017/gift-registry/pkg/models"
)

// ErrGiftIdeaNotFound is returned when a reservation targets a missing gift idea.
var ErrGiftIdeaNotFound = errors.New("gift idea not found")

// GiftIdeaReserver defines the write operation backing the reservation toggle.
type GiftIdeaReserver interface {
	SetReservedBy(ctx context.Context, giftID int64, userID *int64) (*models.GiftIdeaDB, error)
}

// ReservationService toggles a gift idea between Open and Reserved.
//
// A gift idea holds at most one reserver (a single scalar column).
// Reserve is unconditional: reserving an already-reserved gift overwrites
// the previous holder, and concurrent reserves race with last writer wins.
// Unreserve clears any holder regardless of caller. Both are deliberate,
// documented properties of the contract.
type ReservationService struct {
	writer GiftIdeaReserver
}

// NewReservationService creates a new ReservationService instance.
func NewReservationService(writer GiftIdeaReserver) *ReservationService {
	return &ReservationService{writer: writer}
}

// Reserve records userID as the reservation holder of the gift idea and
// stamps date_reserved.
func (svc *ReservationService) Reserve(ctx context.Context, giftID, userID int64) (*models.GiftIdeaResponseBody, error) {
	gift, err := svc.writer.SetReservedBy(ctx, giftID, &userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Log.Errorw("reserve: gift idea not found", "gift_id", giftID)
			return nil, ErrGiftIdeaNotFound
		}
		logger.Log.Errorw("failed to reserve gift idea", "gift_id", giftID, "user_id", userID, "err", err)
		return nil, err
	}

	return gift.ToResponseBody(), nil
}

// Unreserve clears the reservation holder and date_reserved.
func (svc *ReservationService) Unreserve(ctx context.Context, giftID int64) (*models.GiftIdeaResponseBody, error) {
	gift, err := svc.writer.SetReservedBy(ctx, giftID, nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Log.Errorw("unreserve: gift idea not found", "gift_id", giftID)
			return nil, ErrGiftIdeaNotFound
		}
		logger.Log.Errorw("failed to unreserve gift idea", "gift_id", giftID, "err", err)
		return nil, err
	}

	return gift.ToResponseBody(), nil
}
