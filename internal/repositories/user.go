package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gift-registry/internal/logger"
	"github.com/sbilibin2017/gift-registry/pkg/models"
)

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user with the given id, or nil when no row matches.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `
		SELECT id, email, password, first_name, last_name, phone
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns the user with the given email, or nil when no row matches.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, email, password, first_name, last_name, phone
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmailAndPassword is the login lookup. The password column is
// compared as stored, no hashing.
func (r *UserReadRepository) GetByEmailAndPassword(ctx context.Context, email, password string) (*models.UserDB, error) {
	const query = `
		SELECT id, email, password, first_name, last_name, phone
		FROM users
		WHERE email = $1 AND password = $2
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email, password)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns all users projected to MinimalUserInfo (no password).
// An empty table yields an empty slice, not an error.
func (r *UserReadRepository) List(ctx context.Context) ([]models.MinimalUserInfo, error) {
	const query = `
		SELECT id, email, first_name, last_name, phone
		FROM users
		ORDER BY id
	`

	var users []models.MinimalUserInfo
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"result_count", len(users),
		"error", err,
	)

	return users, err
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user, then re-reads the row by its email to pick up
// the assigned id.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.NewUser) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (email, password, first_name, last_name, phone)
		VALUES ($1, $2, $3, $4, $5)
	`
	args := []any{user.Email, user.Password, user.FirstName, user.LastName, user.Phone}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{user.Email},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	var created models.UserDB
	const reread = `
		SELECT id, email, password, first_name, last_name, phone
		FROM users
		WHERE email = $1
	`
	if err := r.db.GetContext(ctx, &created, reread, user.Email); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update performs a full-column replace keyed by email and returns the
// updated row. Returns sql.ErrNoRows when no row matches the email.
func (r *UserWriteRepository) Update(ctx context.Context, user *models.NewUser) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET password = $2, first_name = $3, last_name = $4, phone = $5
		WHERE email = $1
	`
	args := []any{user.Email, user.Password, user.FirstName, user.LastName, user.Phone}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{user.Email},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, sql.ErrNoRows
	}

	var updated models.UserDB
	const reread = `
		SELECT id, email, password, first_name, last_name, phone
		FROM users
		WHERE email = $1
	`
	if err := r.db.GetContext(ctx, &updated, reread, user.Email); err != nil {
		return nil, err
	}
	return &updated, nil
}
