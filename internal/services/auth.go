package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/margdarshak/career-api/internal/logger"
	"github.com/margdarshak/career-api/internal/models"
)

// Credential rules
const (
	MinUsernameLength = 3
	MaxUsernameLength = 20
	MinPasswordLength = 6
	PasswordHashCost  = 10
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, passwordHash string) (*models.UserDB, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, username string) (string, error)
}

// AuthService handles signup and signin.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// ValidateSignup checks the credential rules without touching storage.
// username is expected to be trimmed already.
func ValidateSignup(username, password string) error {
	if username == "" || password == "" {
		return &models.ValidationError{Message: "All fields (username, password) are required."}
	}
	if len(username) < MinUsernameLength || len(username) > MaxUsernameLength {
		return models.NewValidationError("Username must be between %d and %d characters.", MinUsernameLength, MaxUsernameLength)
	}
	if !usernamePattern.MatchString(username) {
		return &models.ValidationError{Message: "Username can only contain letters, numbers, and underscores."}
	}
	if len(password) < MinPasswordLength {
		return models.NewValidationError("Password must be at least %d characters.", MinPasswordLength)
	}
	return nil
}

// Signup creates a user and returns it with a fresh session token.
func (svc *AuthService) Signup(ctx context.Context, username, password string) (*models.UserDB, string, error) {
	username = strings.TrimSpace(username)
	if err := ValidateSignup(username, password); err != nil {
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	user, err := svc.writer.Save(ctx, username, string(hashedPassword))
	if err != nil {
		var conflict *models.ConflictError
		if errors.As(err, &conflict) {
			logger.FromContext(ctx).Infow("username already exists", "username", username)
			return nil, "", &models.ConflictError{Message: "Username already exists. Please choose a different username."}
		}
		logger.FromContext(ctx).Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Username)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Signin authenticates a user and returns a JWT token. Unknown users and wrong
// passwords both yield models.ErrInvalidCredentials.
func (svc *AuthService) Signin(ctx context.Context, username, password string) (*models.UserDB, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", &models.ValidationError{Message: "All fields (username, password) are required."}
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		logger.FromContext(ctx).Infow("signin for unknown user", "username", username)
		return nil, "", models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.FromContext(ctx).Infow("invalid credentials", "username", username)
		return nil, "", models.ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Username)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return user, token, nil
}
