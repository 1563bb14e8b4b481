package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/margdarshak/career-api/internal/jwt"
	"github.com/margdarshak/career-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UserID: uuid.New(), Username: "john_doe"}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedMsg  string
	}{
		{
			name: "success",
			body: `{"username":"john_doe","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Signup(gomock.Any(), "john_doe", "secret123").Return(user, "token", nil)
			},
			expectedCode: http.StatusCreated,
			expectedMsg:  "User registered successfully!",
		},
		{
			name: "validation error",
			body: `{"username":"jo","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Signup(gomock.Any(), "jo", "secret123").
					Return(nil, "", &models.ValidationError{Message: "Username must be between 3 and 20 characters."})
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Username must be between 3 and 20 characters.",
		},
		{
			name: "username taken",
			body: `{"username":"john_doe","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Signup(gomock.Any(), "john_doe", "secret123").
					Return(nil, "", &models.ConflictError{Message: "Username already exists. Please choose a different username."})
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Username already exists. Please choose a different username.",
		},
		{
			name: "internal server error",
			body: `{"username":"john_doe","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Signup(gomock.Any(), "john_doe", "secret123").Return(nil, "", errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "Internal server error",
		},
		{
			name:         "invalid json",
			body:         "{invalid json}",
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "All fields (username, password) are required.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/user/signup", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			NewSignupHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMsg, resp["message"])
			assert.Equal(t, tt.expectedCode == http.StatusCreated, resp["success"])

			if tt.expectedCode == http.StatusCreated {
				assert.Equal(t, "token", resp["token"])
				assert.Equal(t, map[string]any{"id": user.UserID.String(), "username": "john_doe"}, resp["user"])
			}
		})
	}
}

func TestSigninHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UserID: uuid.New(), Username: "john_doe"}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedMsg  string
	}{
		{
			name: "success",
			body: `{"username":"john_doe","password":"secret123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Signin(gomock.Any(), "john_doe", "secret123").Return(user, "token", nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Login successful",
		},
		{
			name: "missing fields",
			body: `{"username":"john_doe"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Signin(gomock.Any(), "john_doe", "").
					Return(nil, "", &models.ValidationError{Message: "All fields (username, password) are required."})
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "All fields (username, password) are required.",
		},
		{
			name: "invalid credentials",
			body: `{"username":"john_doe","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Signin(gomock.Any(), "john_doe", "wrong").Return(nil, "", models.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedMsg:  "Invalid username or password.",
		},
		{
			name: "internal server error",
			body: `{"username":"john_doe","password":"secret123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Signin(gomock.Any(), "john_doe", "secret123").Return(nil, "", errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/user/signin", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			NewSigninHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMsg, resp["message"])
		})
	}
}

func TestMeHandler(t *testing.T) {
	userID := uuid.New()

	t.Run("with claims", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
		req = req.WithContext(jwt.WithClaims(req.Context(), &jwt.Claims{UserID: userID, Username: "john_doe"}))
		rr := httptest.NewRecorder()

		NewMeHandler()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp models.UserPublic
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, models.UserPublic{ID: userID, Username: "john_doe"}, resp)
	})

	t.Run("without claims", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewMeHandler()(rr, httptest.NewRequest(http.MethodGet, "/user/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
