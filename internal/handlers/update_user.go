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

// UserUpdater defines the write operation backing the profile update.
type UserUpdater interface {
	Update(ctx context.Context, user *models.NewUser) (*models.UserDB, error)
}

// NewUpdateUserHandler returns an HTTP handler for the profile update:
// a full replace of the optional fields, keyed by email.
// @Summary Update a user profile
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.NewUser true "Replacement profile, keyed by email"
// @Success 200 {object} models.UserDB "Updated user"
// @Failure 400 {string} string "Invalid request body"
// @Failure 404 {string} string "No user with that email"
// @Router /v1/users/update [patch]
func NewUpdateUserHandler(writer UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.NewUser
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		user, err := writer.Update(r.Context(), &req)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprintf(w, "No user found with email: %s", req.Email)
				return
			}
			logger.Log.Errorw("update user failed", "err", err)
			w.WriteHeader(storeErrorStatus(err))
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
