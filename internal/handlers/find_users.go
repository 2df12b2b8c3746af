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

// UserFinder defines the read operations backing the user lookup endpoints.
type UserFinder interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	List(ctx context.Context) ([]models.MinimalUserInfo, error)
}

// NewFindAllUsersHandler returns an HTTP handler listing every user
// without the password column. An empty table is a 404, not an empty
// array.
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} models.MinimalUserInfo "All users, passwords stripped"
// @Failure 404 {string} string "No users in database"
// @Router /v1/users/find_all [get]
func NewFindAllUsersHandler(reader UserFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := reader.List(r.Context())
		if err != nil {
			logger.Log.Errorw("find all users failed", "err", err)
			w.WriteHeader(storeErrorStatus(err))
			return
		}

		if len(users) == 0 {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, "No users in database")
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(users)
	}
}

// NewFindUserByIDHandler returns an HTTP handler looking a user up by id.
// @Summary Find a user by id
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} models.UserDB
// @Failure 400 {string} string "Invalid id"
// @Failure 404 {string} string "No user with that id"
// @Router /v1/users/find_by_id/{id} [get]
func NewFindUserByIDHandler(reader UserFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid user id", http.StatusBadRequest)
			return
		}

		user, err := reader.GetByID(r.Context(), id)
		if err != nil {
			logger.Log.Errorw("find user by id failed", "err", err)
			w.WriteHeader(storeErrorStatus(err))
			return
		}

		if user == nil {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprintf(w, "No user found with uid: %d", id)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}

// NewFindUserByEmailHandler returns an HTTP handler looking a user up by
// email.
// @Summary Find a user by email
// @Tags users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} models.UserDB
// @Failure 404 {string} string "No user with that email"
// @Router /v1/users/find_by_email/{email} [get]
func NewFindUserByEmailHandler(reader UserFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := chi.URLParam(r, "email")

		user, err := reader.GetByEmail(r.Context(), email)
		if err != nil {
			logger.Log.Errorw("find user by email failed", "err", err)
			w.WriteHeader(storeErrorStatus(err))
			return
		}

		if user == nil {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprintf(w, "No user found with email: %s", email)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
