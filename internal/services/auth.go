package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gift-registry/internal/logger"
	"github.com/sbilibin2017/gift-registry/pkg/models"
)

// Error variables
var (
	ErrUserAlreadyExists = errors.New("email already exists")
	ErrUserDoesNotExist  = errors.New("no user matches the email and password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByEmailAndPassword(ctx context.Context, email, password string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.NewUser) (*models.UserDB, error)
}

// AuthService handles registration and login.
//
// Passwords are stored and compared as entered. That is the documented
// contract of this service, not an oversight.
type AuthService struct {
	reader UserReader
	writer UserWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
	}
}

// Register creates a new user and returns the stored row, id assigned.
func (svc *AuthService) Register(ctx context.Context, body *models.RegisterRequestBody) (*models.UserDB, error) {
	existing, err := svc.reader.GetByEmail(ctx, body.Email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "email", body.Email)
		return nil, ErrUserAlreadyExists
	}

	user, err := svc.writer.Save(ctx, &models.NewUser{
		Email:     body.Email,
		Password:  body.Password,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Phone:     body.Phone,
	})
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// Login returns the user matching the email and password pair.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.UserDB, error) {
	user, err := svc.reader.GetByEmailAndPassword(ctx, email, password)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("login failed", "email", email)
		return nil, ErrUserDoesNotExist
	}

	return user, nil
}
