package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/margdarshak/career-api/internal/models"
	"github.com/margdarshak/career-api/internal/services"
)

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantMsg  string
	}{
		{name: "valid", username: "alice_01", password: "secret"},
		{name: "max length username", username: strings.Repeat("a", 20), password: "secret"},
		{name: "missing username", username: "", password: "secret", wantMsg: "All fields (username, password) are required."},
		{name: "missing password", username: "alice", password: "", wantMsg: "All fields (username, password) are required."},
		{name: "too short", username: "ab", password: "secret", wantMsg: "Username must be between 3 and 20 characters."},
		{name: "too long", username: strings.Repeat("a", 21), password: "secret", wantMsg: "Username must be between 3 and 20 characters."},
		{name: "bad characters", username: "alice!", password: "secret", wantMsg: "Username can only contain letters, numbers, and underscores."},
		{name: "short password", username: "alice", password: "12345", wantMsg: "Password must be at least 6 characters."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := services.ValidateSignup(tt.username, tt.password)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *models.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantMsg, vErr.Message)
		})
	}
}

func TestAuthService_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		userID := uuid.New()
		var storedHash string
		mockWriter.EXPECT().
			Save(gomock.Any(), "alice", gomock.Any()).
			DoAndReturn(func(_ context.Context, username, hash string) (*models.UserDB, error) {
				storedHash = hash
				return &models.UserDB{UserID: userID, Username: username, PasswordHash: hash}, nil
			})
		mockJWT.EXPECT().Generate(gomock.Any(), userID, "alice").Return("token123", nil)

		user, token, err := svc.Signup(ctx, "alice", "pass123")
		require.NoError(t, err)
		assert.Equal(t, userID, user.UserID)
		assert.Equal(t, "token123", token)

		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("pass123")))
		cost, err := bcrypt.Cost([]byte(storedHash))
		require.NoError(t, err)
		assert.Equal(t, services.PasswordHashCost, cost)
	})

	t.Run("username is trimmed", func(t *testing.T) {
		userID := uuid.New()
		mockWriter.EXPECT().
			Save(gomock.Any(), "erin", gomock.Any()).
			Return(&models.UserDB{UserID: userID, Username: "erin"}, nil)
		mockJWT.EXPECT().Generate(gomock.Any(), userID, "erin").Return("token123", nil)

		user, _, err := svc.Signup(ctx, "  erin ", "pass123")
		require.NoError(t, err)
		assert.Equal(t, "erin", user.Username)
	})

	t.Run("blank username", func(t *testing.T) {
		_, _, err := svc.Signup(ctx, "   ", "pass123")
		var vErr *models.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "All fields (username, password) are required.", vErr.Message)
	})

	t.Run("validation error skips storage", func(t *testing.T) {
		_, _, err := svc.Signup(ctx, "a", "pass123")
		var vErr *models.ValidationError
		assert.True(t, errors.As(err, &vErr))
	})

	t.Run("duplicate username", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), "bob", gomock.Any()).
			Return(nil, &models.ConflictError{Message: "username already exists"})

		user, token, err := svc.Signup(ctx, "bob", "pass123")
		assert.Nil(t, user)
		assert.Empty(t, token)

		var conflict *models.ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, "Username already exists. Please choose a different username.", conflict.Message)
	})

	t.Run("writer error", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), "carol", gomock.Any()).
			Return(nil, errors.New("save error"))

		_, _, err := svc.Signup(ctx, "carol", "pass123")
		assert.EqualError(t, err, "save error")
	})

	t.Run("token error", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), "dave", gomock.Any()).
			Return(&models.UserDB{UserID: uuid.New(), Username: "dave"}, nil)
		mockJWT.EXPECT().Generate(gomock.Any(), gomock.Any(), "dave").Return("", errors.New("sign error"))

		_, _, err := svc.Signup(ctx, "dave", "pass123")
		assert.EqualError(t, err, "sign error")
	})
}

func TestAuthService_Signin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.MinCost)
	userID := uuid.New()
	stored := &models.UserDB{UserID: userID, Username: "alice", PasswordHash: string(hash)}

	tests := []struct {
		name      string
		username  string
		password  string
		user      *models.UserDB
		readerErr error
		jwtToken  string
		jwtErr    error
		wantToken string
		wantErr   error
	}{
		{
			name:      "successful signin",
			username:  "alice",
			password:  "pass123",
			user:      stored,
			jwtToken:  "token123",
			wantToken: "token123",
		},
		{
			name:     "unknown user",
			username: "ghost",
			password: "pass123",
			wantErr:  models.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "wrongpass",
			user:     stored,
			wantErr:  models.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			username:  "alice",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:     "jwt error",
			username: "alice",
			password: "pass123",
			user:     stored,
			jwtErr:   errors.New("jwt error"),
			wantErr:  errors.New("jwt error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().GetByUsername(gomock.Any(), tt.username).Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.password == "pass123" {
				mockJWT.EXPECT().Generate(gomock.Any(), userID, "alice").Return(tt.jwtToken, tt.jwtErr)
			}

			user, token, err := svc.Signin(ctx, tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, userID, user.UserID)
		})
	}

	t.Run("username is trimmed", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(stored, nil)
		mockJWT.EXPECT().Generate(gomock.Any(), userID, "alice").Return("token123", nil)

		_, token, err := svc.Signin(ctx, " alice ", "pass123")
		require.NoError(t, err)
		assert.Equal(t, "token123", token)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, _, err := svc.Signin(ctx, "", "")
		var vErr *models.ValidationError
		assert.True(t, errors.As(err, &vErr))
	})

	t.Run("unknown user and wrong password look the same", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)
		_, _, errUnknown := svc.Signin(ctx, "ghost", "pass123")

		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(stored, nil)
		_, _, errWrong := svc.Signin(ctx, "alice", "nope123")

		assert.Equal(t, errUnknown.Error(), errWrong.Error())
		assert.ErrorIs(t, errUnknown, models.ErrInvalidCredentials)
	})
}
