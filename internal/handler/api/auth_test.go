//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"court-booking/internal/handler/api"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"
	"court-booking/tests/common/httptest"
	"court-booking/tests/common/testutil"
	commandsmock "court-booking/tests/mock/commands"

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
	handler      *api.AuthHandler
	userID       uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands)
	s.userID = uuid.New()

	s.router.POST("/api/auth/register", s.handler.Register)
	s.router.POST("/api/auth/login", s.handler.Login)
	s.router.GET("/api/auth/profile", func(c *gin.Context) {
		// Mock middleware behavior for the authenticated profile route
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		s.handler.Profile(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) authResult() *commands.AuthResult {
	return &commands.AuthResult{
		Token: "test-jwt-token",
		User: &commands.UserProfile{
			ID:    s.userID,
			Email: "player@example.com",
			Name:  "Test Player",
			Role:  "user",
		},
	}
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/api/auth/register"

	validBody := func() map[string]any {
		return map[string]any{
			"email":    "player@example.com",
			"password": "password123",
			"name":     "Test Player",
		}
	}

	s.Run("success: returns 201 with token and user", func() {
		s.mockCommands.EXPECT().
			Register(gomock.Any(), commands.RegisterInput{
				Email:    "player@example.com",
				Password: "password123",
				Name:     "Test Player",
			}).
			Return(s.authResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody(), "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("test-jwt-token", response.Token)
		s.Equal("player@example.com", response.User.Email)
	})

	s.Run("error: 400 on validation failures", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email")},
			{name: "password too short", mutate: testutil.Field("password", "short")},
			{name: "missing name", mutate: testutil.Field("name", nil)},
		}

		for _, c := range cases {
			s.Run(c.name, func() {
				body := validBody()
				c.mutate(body)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 409 when the email is taken", func() {
		s.mockCommands.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrEmailTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email already registered")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/api/auth/login"
	body := map[string]any{"email": "player@example.com", "password": "password123"}

	s.Run("success: returns 200 with token", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), commands.LoginInput{Email: "player@example.com", Password: "password123"}).
			Return(s.authResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-jwt-token", response.Token)
	})

	s.Run("error: 401 on bad credentials", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 500 on unexpected failures", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AuthHandlerTestSuite) TestProfile() {
	url := "/api/auth/profile"

	s.Run("success: returns the authenticated user", func() {
		s.mockCommands.EXPECT().
			Profile(gomock.Any(), s.userID).
			Return(s.authResult().User, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.userID, response.ID)
		s.Equal("player@example.com", response.Email)
	})

	s.Run("error: 404 when the user record is gone", func() {
		s.mockCommands.EXPECT().
			Profile(gomock.Any(), s.userID).
			Return(nil, errs.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}
