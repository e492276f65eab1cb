//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"giggo-server/internal/handler/api"
	reqdto "giggo-server/internal/handler/dto/request"
	resdto "giggo-server/internal/handler/dto/response"
	"giggo-server/internal/pkg/config"
	"giggo-server/internal/pkg/cookie"
	"giggo-server/internal/pkg/jwt"
	"giggo-server/internal/usecase/commands"
	"giggo-server/internal/usecase/queries"
	commonhttp "giggo-server/tests/common/httptest"
	commandsmock "giggo-server/tests/mock/commands"
	queriesmock "giggo-server/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
	userID       uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.userID = uuid.New()

	cfg := config.NewTestConfig()
	jwtService := jwt.NewService(cfg.JWT.Secret, 15*time.Minute, 168*time.Hour)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, jwtService, cfg.Cookie)

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) tokenPair() *commands.TokenPair {
	return &commands.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}
}

func (s *AuthHandlerTestSuite) TestRegister() {
	req := reqdto.RegisterRequest{
		Email:       "asha@example.com",
		Password:    "s3cretpass",
		DisplayName: "Asha",
	}

	s.Run("success: 201 with tokens in cookies", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), req).
			Return(&commands.AuthResult{UserID: s.userID, TokenPair: s.tokenPair()}, nil).
			Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register", req, nil)

		s.Equal(http.StatusCreated, w.Code)
		var resp resdto.AuthResponse
		commonhttp.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Equal("access-token", resp.AccessToken)
		s.Equal(s.userID.String(), resp.UserID)

		access := commonhttp.ExtractCookie(w, cookie.AccessTokenCookieName)
		s.Require().NotNil(access)
		s.Equal("access-token", access.Value)
		s.True(access.HttpOnly)
	})

	s.Run("duplicate email: 409", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), req).
			Return(nil, commands.ErrEmailAlreadyRegistered).
			Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register", req, nil)
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("invalid email rejected by binding", func() {
		bad := req
		bad.Email = "not-an-email"
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register", bad, nil)
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("short password rejected by binding", func() {
		bad := req
		bad.Password = "short"
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register", bad, nil)
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	req := reqdto.LoginRequest{Email: "asha@example.com", Password: "s3cretpass"}

	s.Run("success: 200 with token pair", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), req).
			Return(&commands.AuthResult{UserID: s.userID, TokenPair: s.tokenPair()}, nil).
			Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", req, nil)

		s.Equal(http.StatusOK, w.Code)
		s.NotNil(commonhttp.ExtractCookie(w, cookie.RefreshTokenCookieName))
	})

	s.Run("bad credentials: 401 with a neutral message", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), req).
			Return(nil, commands.ErrInvalidCredentials).
			Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", req, nil)
		s.Equal(http.StatusUnauthorized, w.Code)
		s.Contains(w.Body.String(), "Invalid email or password")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, nil)

	s.Equal(http.StatusNoContent, w.Code)
	access := commonhttp.ExtractCookie(w, cookie.AccessTokenCookieName)
	s.Require().NotNil(access)
	s.Empty(access.Value)
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("authenticated", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).
			Return(&queries.AuthorizedUserView{ID: s.userID, Email: "asha@example.com", DisplayName: "Asha"}, nil).
			Times(1)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil,
			map[string]string{"Authorization": "Bearer token"})

		s.Equal(http.StatusOK, w.Code)
		var resp resdto.CurrentUserResponse
		commonhttp.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Equal("Asha", resp.DisplayName)
	})

	s.Run("unauthenticated: 401", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, nil)
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}
