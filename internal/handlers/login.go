package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gift-registry/internal/logger"
	"github.com/sbilibin2017/gift-registry/pkg/models"
	"github.com/sbilibin2017/gift-registry/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.UserDB, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Returns the user matching the email and password pair.
// @Tags users
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequestBody true "Login request"
// @Success 200 {object} models.UserDB "Authenticated user"
// @Failure 400 {string} string "Invalid request body"
// @Failure 404 {string} string "No user matches the credentials"
// @Router /v1/users/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequestBody
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		user, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrUserDoesNotExist) {
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprintf(w, "No user found with email: %s", req.Email)
				return
			}
			logger.Log.Errorw("login failed", "err", err)
			w.WriteHeader(storeErrorStatus(err))
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
