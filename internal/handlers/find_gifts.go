package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gift-registry/internal/logger"
	"github.com/sbilibin2017/gift-registry/pkg/models"
)

// GiftIdeaFinder defines the read operations backing the gift lookup endpoints.
type GiftIdeaFinder interface {
	GetByID(ctx context.Context, id int64) (*models.GiftIdeaDB, error)
	List(ctx context.Context) ([]models.GiftIdeaDB, error)
}

// NewFindGiftByIDHandler returns an HTTP handler looking a gift idea up by id.
// @Summary Find a gift idea by id
// @Tags gifts
// @Produce json
// @Param id path int true "Gift idea id"
// @Success 200 {object} models.GiftIdeaDB
// @Failure 400 {string} string "Invalid id"
// @Failure 404 {string} string "No gift idea with that id"
// @Router /v1/gifts/find_by_id/{id} [get]
func NewFindGiftByIDHandler(reader GiftIdeaFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid gift idea id", http.StatusBadRequest)
			return
		}

		gift, err := reader.GetByID(r.Context(), id)
		if err != nil {
			logger.Log.Errorw("find gift idea by id failed", "err", err)
			w.WriteHeader(storeErrorStatus(err))
			return
		}

		if gift == nil {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprintf(w, "No gift idea found with uid: %d", id)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(gift)
	}
}

// NewFindAllGiftsHandler returns an HTTP handler listing every gift idea.
// An empty table is a 404, not an empty array.
// @Summary List all gift ideas
// @Tags gifts
// @Produce json
// @Success 200 {array} models.GiftIdeaDB
// @Failure 404 {string} string "No gift ideas in database"
// @Router /v1/gifts/find_all [get]
func NewFindAllGiftsHandler(reader GiftIdeaFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gifts, err := reader.List(r.Context())
		if err != nil {
			logger.Log.Errorw("find all gift ideas failed", "err", err)
			w.WriteHeader(storeErrorStatus(err))
			return
		}

		if len(gifts) == 0 {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, "No gift ideas in database")
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(gifts)
	}
}
