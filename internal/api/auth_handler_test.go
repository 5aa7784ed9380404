package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtsidehq/venue-booking-backend/internal/auth"
	"github.com/courtsidehq/venue-booking-backend/internal/user"
)

type fakeUserService struct {
	registerErr error
	loginErr    error
	user        *user.User
}

func (s *fakeUserService) Register(ctx context.Context, req user.RegisterRequest) (*user.User, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return s.user, nil
}

func (s *fakeUserService) Login(ctx context.Context, email, password string) (*user.User, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.user, nil
}

func (s *fakeUserService) GetByID(ctx context.Context, id string) (*user.User, error) {
	panic("not used")
}

func (s *fakeUserService) UpdateProfile(ctx context.Context, id string, req user.UpdateProfileRequest) (*user.User, error) {
	panic("not used")
}

func postJSON(t *testing.T, h gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h(c)
	return w
}

const registerBody = `{"email":"jo@example.com","password":"longenough","name":"Jo"}`

func newAuthHandler(svc user.Service) *AuthHandler {
	return NewAuthHandler(svc, auth.NewJWTManager("test-secret", time.Minute))
}

func TestRegister(t *testing.T) {
	t.Run("success issues a token", func(t *testing.T) {
		h := newAuthHandler(&fakeUserService{user: &user.User{
			ID:    "user-1",
			Email: "jo@example.com",
			Name:  "Jo",
			Role:  user.RoleCustomer,
		}})

		w := postJSON(t, h.Register, registerBody)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"token"`)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		h := newAuthHandler(&fakeUserService{registerErr: user.ErrEmailAlreadyUsed})

		w := postJSON(t, h.Register, registerBody)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("repository failure stays opaque", func(t *testing.T) {
		h := newAuthHandler(&fakeUserService{
			registerErr: errors.New("failed to check existing email: connection refused"),
		})

		w := postJSON(t, h.Register, registerBody)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestLogin(t *testing.T) {
	loginBody := `{"email":"jo@example.com","password":"longenough"}`

	t.Run("bad credentials", func(t *testing.T) {
		h := newAuthHandler(&fakeUserService{loginErr: user.ErrInvalidCredentials})

		w := postJSON(t, h.Login, loginBody)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("repository failure stays opaque", func(t *testing.T) {
		h := newAuthHandler(&fakeUserService{loginErr: errors.New("scan user failed: EOF")})

		w := postJSON(t, h.Login, loginBody)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "EOF")
	})
}
