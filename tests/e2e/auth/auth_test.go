//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"giggo-server/internal/handler/dto/request"
	"giggo-server/internal/pkg/cookie"
	"giggo-server/tests/common/httptest"
	"giggo-server/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	refreshURL  = "/api/auth/refresh"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

type authResponse struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
}

func (s *authSuite) register(email, password, displayName string) authResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, request.RegisterRequest{
		Email:       email,
		Password:    password,
		DisplayName: displayName,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, "registration should succeed")

	var res authResponse
	httptest.DecodeResponseBody(t, w.Body, &res)
	return res
}

func (s *authSuite) TestRegister() {
	tests := []struct {
		name           string
		setup          func()
		body           request.RegisterRequest
		expectedStatus int
	}{
		{
			name:           "valid registration",
			body:           request.RegisterRequest{Email: "new@example.com", Password: "password123", DisplayName: "New User"},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "duplicate email",
			setup: func() {
				s.register("taken@example.com", "password123", "First")
			},
			body:           request.RegisterRequest{Email: "taken@example.com", Password: "password123", DisplayName: "Second"},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "malformed email",
			body:           request.RegisterRequest{Email: "not-an-email", Password: "password123", DisplayName: "User"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "short password",
			body:           request.RegisterRequest{Email: "short@example.com", Password: "short", DisplayName: "User"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			if tt.setup != nil {
				tt.setup()
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, tt.body, nil)
			require.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var res authResponse
				httptest.DecodeResponseBody(t, w.Body, &res)
				require.NotEmpty(t, res.AccessToken, "access token missing")
				require.NotEmpty(t, res.UserID, "user ID missing")
				require.NotNil(t, httptest.ExtractCookie(w, cookie.AccessTokenCookieName), "access cookie missing")
				require.NotNil(t, httptest.ExtractCookie(w, cookie.RefreshTokenCookieName), "refresh cookie missing")
			}
		})
	}
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			email:          "login@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown email",
			email:          "nobody@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password",
			email:          "login@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty password",
			email:          "login@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			s.register("login@example.com", "password123", "Login User")

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}, nil)
			require.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var res authResponse
				httptest.DecodeResponseBody(t, w.Body, &res)
				require.NotEmpty(t, res.AccessToken, "access token missing")

				var lastLogin any
				err := s.DB.QueryRow(t.Context(), "SELECT last_login_at FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login_at was not updated")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("valid refresh cookie issues a new access token", func() {
		t := s.T()
		s.register("refresh@example.com", "password123", "Refresh User")

		loginW := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, request.LoginRequest{
			Email:    "refresh@example.com",
			Password: "password123",
		}, nil)
		require.Equal(t, http.StatusOK, loginW.Code)

		refreshCookie := httptest.ExtractCookie(loginW, cookie.RefreshTokenCookieName)
		require.NotNil(t, refreshCookie, "refresh cookie missing after login")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, map[string]string{
			"Cookie": refreshCookie.Name + "=" + refreshCookie.Value,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var res struct {
			AccessToken string `json:"access_token"`
		}
		httptest.DecodeResponseBody(t, w.Body, &res)
		require.NotEmpty(t, res.AccessToken, "refreshed access token missing")
	})

	s.Run("missing refresh cookie is rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	s.Run("authenticated user sees their account", func() {
		t := s.T()
		res := s.register("me@example.com", "password123", "Me User")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, map[string]string{
			"Authorization": "Bearer " + res.AccessToken,
		})
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "me@example.com")
		require.NotContains(t, w.Body.String(), "password", "response leaks password material")
	})

	s.Run("requests without a token are rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("logout clears the auth cookies", func() {
		t := s.T()
		res := s.register("logout@example.com", "password123", "Logout User")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, map[string]string{
			"Authorization": "Bearer " + res.AccessToken,
		})
		require.Equal(t, http.StatusNoContent, w.Code)

		cleared := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value, "access cookie should be cleared")
	})
}
