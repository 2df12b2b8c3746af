package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gift-registry/internal/logger"
	"github.com/sbilibin2017/gift-registry/pkg/models"
	"github.com/sbilibin2017/gift-registry/internal/services"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, body *models.RegisterRequestBody) (*models.UserDB, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account keyed by a unique email and returns the stored row.
// @Tags users
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequestBody true "User registration request"
// @Success 200 {object} models.UserDB "Created user"
// @Failure 400 {string} string "Invalid request body"
// @Failure 409 {string} string "Email already exists"
// @Router /v1/users/add [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequestBody
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		user, err := svc.Register(r.Context(), &req)
		if err != nil {
			if errors.Is(err, services.ErrUserAlreadyExists) {
				http.Error(w, "email already exists", http.StatusConflict)
				return
			}
			logger.Log.Errorw("register failed", "err", err)
			w.WriteHeader(storeErrorStatus(err))
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
