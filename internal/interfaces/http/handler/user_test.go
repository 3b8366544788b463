package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	identityapp "github.com/dropship/backend/internal/application/identity"
	"github.com/dropship/backend/internal/domain/identity"
)

type userHandlerFixture struct {
	router   *gin.Engine
	userRepo *MockUserRepository
}

func newUserHandlerFixture() *userHandlerFixture {
	userRepo := new(MockUserRepository)

	service := identityapp.NewUserService(userRepo, zap.NewNop())
	h := NewUserHandler(service)

	router := gin.New()
	router.POST("/users", h.Register)
	router.POST("/users/login", h.Login)
	router.GET("/users/:id", h.GetByID)
	router.DELETE("/users/:id", h.Deactivate)

	return &userHandlerFixture{
		router:   router,
		userRepo: userRepo,
	}
}

func (f *userHandlerFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)
	return w
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("registers user", func(t *testing.T) {
		f := newUserHandlerFixture()
		f.userRepo.On("ExistsByEmail", mock.Anything, "buyer@acme.test").Return(false, nil)
		f.userRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		w := f.do(t, http.MethodPost, "/users", map[string]any{
			"email":        "Buyer@Acme.test",
			"password":     "s3cret-pass",
			"display_name": "Buyer",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"email":"buyer@acme.test"`)
		assert.NotContains(t, w.Body.String(), "s3cret-pass")
	})

	t.Run("returns 409 on duplicate email", func(t *testing.T) {
		f := newUserHandlerFixture()
		f.userRepo.On("ExistsByEmail", mock.Anything, "buyer@acme.test").Return(true, nil)

		w := f.do(t, http.MethodPost, "/users", map[string]any{
			"email":    "buyer@acme.test",
			"password": "s3cret-pass",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("rejects short password", func(t *testing.T) {
		f := newUserHandlerFixture()

		w := f.do(t, http.MethodPost, "/users", map[string]any{
			"email":    "buyer@acme.test",
			"password": "short",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("authenticates with valid credentials", func(t *testing.T) {
		f := newUserHandlerFixture()
		user, err := identity.NewUser("buyer@acme.test", "s3cret-pass", "Buyer")
		require.NoError(t, err)
		f.userRepo.On("FindByEmail", mock.Anything, "buyer@acme.test").Return(user, nil)
		f.userRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		w := f.do(t, http.MethodPost, "/users/login", map[string]any{
			"email":    "buyer@acme.test",
			"password": "s3cret-pass",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"last_login_at"`)
	})

	t.Run("returns 401 on wrong password", func(t *testing.T) {
		f := newUserHandlerFixture()
		user, err := identity.NewUser("buyer@acme.test", "s3cret-pass", "Buyer")
		require.NoError(t, err)
		f.userRepo.On("FindByEmail", mock.Anything, "buyer@acme.test").Return(user, nil)

		w := f.do(t, http.MethodPost, "/users/login", map[string]any{
			"email":    "buyer@acme.test",
			"password": "wrong-pass",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_INVALID_CREDENTIALS")
	})
}

func TestUserHandler_Deactivate(t *testing.T) {
	f := newUserHandlerFixture()
	user, err := identity.NewUser("buyer@acme.test", "s3cret-pass", "Buyer")
	require.NoError(t, err)
	f.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	f.userRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	w := f.do(t, http.MethodDelete, "/users/"+user.ID.String(), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
