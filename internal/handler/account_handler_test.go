package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventflow/internal/model"
	"eventflow/internal/service"
	apperrors "eventflow/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSignup(t *testing.T) {
	validRequest := map[string]string{
		"username":         "alice",
		"email":            "alice@example.com",
		"password":         "s3cret-pass",
		"password_confirm": "s3cret-pass",
	}

	t.Run("Success", func(t *testing.T) {
		router, s := setupTestRouter(t)

		s.accounts.EXPECT().Signup(mock.Anything, mock.MatchedBy(func(p service.SignupParams) bool {
			return p.Username == "alice" && p.Email != nil && *p.Email == "alice@example.com" && p.Password == "s3cret-pass"
		})).Return(&model.User{ID: 1, Username: "alice"}, nil).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/auth/signup", validRequest))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Account created successfully. Please login.", decodeBody(t, w)["message"])
	})

	t.Run("Success - empty email", func(t *testing.T) {
		router, s := setupTestRouter(t)

		s.accounts.EXPECT().Signup(mock.Anything, mock.MatchedBy(func(p service.SignupParams) bool {
			return p.Username == "alice" && p.Email == nil
		})).Return(&model.User{ID: 1, Username: "alice"}, nil).Once()

		req := map[string]string{"username": "alice", "email": "", "password": "s3cret-pass", "password_confirm": "s3cret-pass"}
		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/auth/signup", req))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Failed - username too short", func(t *testing.T) {
		router, s := setupTestRouter(t)

		req := map[string]string{"username": "al", "password": "s3cret-pass", "password_confirm": "s3cret-pass"}
		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/auth/signup", req))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		fields, ok := decodeBody(t, w)["fields"].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, "Ensure this value has at least 3 characters", fields["username"])
		s.accounts.AssertNotCalled(t, "Signup")
	})

	t.Run("Failed - password mismatch", func(t *testing.T) {
		router, s := setupTestRouter(t)

		req := map[string]string{"username": "alice", "password": "s3cret-pass", "password_confirm": "other-pass"}
		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/auth/signup", req))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		fields, ok := decodeBody(t, w)["fields"].(map[string]interface{})
		assert.True(t, ok)
		assert.Contains(t, fields, "password_confirm")
		s.accounts.AssertNotCalled(t, "Signup")
	})

	t.Run("Failed - username taken", func(t *testing.T) {
		router, s := setupTestRouter(t)

		s.accounts.EXPECT().Signup(mock.Anything, mock.Anything).Return(nil, apperrors.ErrUsernameTaken).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/auth/signup", validRequest))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, s := setupTestRouter(t)

		s.accounts.EXPECT().Login(mock.Anything, "alice", "s3cret-pass").Return(&service.LoginResult{
			Token:     "jwt",
			ExpiresAt: time.Now().Add(time.Hour),
			User:      testUser,
		}, nil).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/auth/login",
			map[string]string{"username": "alice", "password": "s3cret-pass"}))

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "jwt", body["token"])
		assert.Equal(t, "Welcome back, alice!", body["message"])
	})

	t.Run("Failed - invalid credentials", func(t *testing.T) {
		router, s := setupTestRouter(t)

		s.accounts.EXPECT().Login(mock.Anything, "alice", "wrong").Return(nil, apperrors.ErrInvalidCredentials).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/auth/login",
			map[string]string{"username": "alice", "password": "wrong"}))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid credentials", decodeBody(t, w)["error"])
	})
}

func TestLogout(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.loginAs(testUser)

		s.accounts.EXPECT().Logout(mock.Anything, validToken).Return(nil).Once()

		w := serve(router, withToken(httptest.NewRequest("POST", "/api/v1/auth/logout", nil)))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - store error", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.loginAs(testUser)

		s.accounts.EXPECT().Logout(mock.Anything, validToken).Return(errors.New("redis down")).Once()

		w := serve(router, withToken(httptest.NewRequest("POST", "/api/v1/auth/logout", nil)))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
