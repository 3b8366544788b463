package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	supplierapp "github.com/dropship/backend/internal/application/supplier"
	"github.com/dropship/backend/internal/domain/identity"
	"github.com/dropship/backend/internal/domain/shared"
	"github.com/dropship/backend/internal/domain/supplier"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// MockSupplierRepository implements supplier.SupplierRepository for testing
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*supplier.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supplier.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindBySlug(ctx context.Context, slugValue string) (*supplier.Supplier, error) {
	args := m.Called(ctx, slugValue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supplier.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]supplier.Supplier, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]supplier.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Save(ctx context.Context, s *supplier.Supplier) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSupplierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSupplierRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockSupplierRepository) ExistsBySlug(ctx context.Context, slugValue string) (bool, error) {
	args := m.Called(ctx, slugValue)
	return args.Bool(0), args.Error(1)
}

func (m *MockSupplierRepository) LinkUser(ctx context.Context, supplierID, userID uuid.UUID) error {
	args := m.Called(ctx, supplierID, userID)
	return args.Error(0)
}

func (m *MockSupplierRepository) UnlinkUser(ctx context.Context, supplierID, userID uuid.UUID) error {
	args := m.Called(ctx, supplierID, userID)
	return args.Error(0)
}

// MockStockLocationRepository implements supplier.StockLocationRepository for testing
type MockStockLocationRepository struct {
	mock.Mock
}

func (m *MockStockLocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*supplier.StockLocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supplier.StockLocation), args.Error(1)
}

func (m *MockStockLocationRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]supplier.StockLocation, error) {
	args := m.Called(ctx, supplierID)
	return args.Get(0).([]supplier.StockLocation), args.Error(1)
}

func (m *MockStockLocationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]supplier.StockLocation, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]supplier.StockLocation), args.Error(1)
}

func (m *MockStockLocationRepository) Save(ctx context.Context, loc *supplier.StockLocation) error {
	args := m.Called(ctx, loc)
	return args.Error(0)
}

func (m *MockStockLocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStockLocationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository implements identity.UserRepository for testing
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]identity.User, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockWelcomeMailer implements supplier.WelcomeMailer for testing
type MockWelcomeMailer struct {
	mock.Mock
}

func (m *MockWelcomeMailer) SendWelcome(ctx context.Context, s *supplier.Supplier) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

// fixedSettings is a fixed drop-ship configuration for handler tests
type fixedSettings struct {
	sendEmail bool
}

func (s fixedSettings) SendSupplierEmail() bool                      { return s.sendEmail }
func (s fixedSettings) DefaultCommissionFlatRate() decimal.Decimal   { return decimal.RequireFromString("0.80") }
func (s fixedSettings) DefaultCommissionPercentage() decimal.Decimal { return decimal.RequireFromString("5") }

type supplierHandlerFixture struct {
	router       *gin.Engine
	supplierRepo *MockSupplierRepository
	locationRepo *MockStockLocationRepository
	userRepo     *MockUserRepository
	mailer       *MockWelcomeMailer
}

func newSupplierHandlerFixture(settings fixedSettings) *supplierHandlerFixture {
	supplierRepo := new(MockSupplierRepository)
	locationRepo := new(MockStockLocationRepository)
	userRepo := new(MockUserRepository)
	mailer := new(MockWelcomeMailer)

	service := supplierapp.NewSupplierService(
		supplierRepo, locationRepo, userRepo, settings, mailer, zap.NewNop())
	h := NewSupplierHandler(service)

	router := gin.New()
	router.POST("/suppliers", h.Create)
	router.GET("/suppliers", h.List)
	router.GET("/suppliers/:id", h.GetByID)
	router.GET("/suppliers/slug/:slug", h.GetBySlug)
	router.PUT("/suppliers/:id", h.Update)
	router.DELETE("/suppliers/:id", h.Delete)
	router.POST("/suppliers/:id/users", h.LinkUser)
	router.DELETE("/suppliers/:id/users/:user_id", h.UnlinkUser)

	return &supplierHandlerFixture{
		router:       router,
		supplierRepo: supplierRepo,
		locationRepo: locationRepo,
		userRepo:     userRepo,
		mailer:       mailer,
	}
}

func (f *supplierHandlerFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
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

func newTestSupplier(t *testing.T) *supplier.Supplier {
	t.Helper()
	sup, err := supplier.NewSupplier("Acme Corp", "sales@acme.test")
	require.NoError(t, err)
	require.NoError(t, sup.AssignSlug("acme-corp"))
	return sup
}

func TestSupplierHandler_Create(t *testing.T) {
	t.Run("creates supplier and returns 201", func(t *testing.T) {
		f := newSupplierHandlerFixture(fixedSettings{})
		f.supplierRepo.On("ExistsByName", mock.Anything, "Acme Corp").Return(false, nil)
		f.supplierRepo.On("ExistsBySlug", mock.Anything, "acme-corp").Return(false, nil)
		f.supplierRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
		f.userRepo.On("FindByEmail", mock.Anything, "sales@acme.test").Return(nil, shared.ErrNotFound)
		f.locationRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		w := f.do(t, http.MethodPost, "/suppliers", map[string]any{
			"name":  "Acme Corp",
			"email": "sales@acme.test",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"slug":"acme-corp"`)
		f.supplierRepo.AssertExpectations(t)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		f := newSupplierHandlerFixture(fixedSettings{})

		w := f.do(t, http.MethodPost, "/suppliers", map[string]any{
			"name": "Acme Corp",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns 502 when welcome delivery fails", func(t *testing.T) {
		f := newSupplierHandlerFixture(fixedSettings{sendEmail: true})
		f.supplierRepo.On("ExistsByName", mock.Anything, "Acme Corp").Return(false, nil)
		f.supplierRepo.On("ExistsBySlug", mock.Anything, "acme-corp").Return(false, nil)
		f.supplierRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
		f.userRepo.On("FindByEmail", mock.Anything, "sales@acme.test").Return(nil, shared.ErrNotFound)
		f.locationRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
		f.mailer.On("SendWelcome", mock.Anything, mock.Anything).Return(errors.New("smtp refused"))

		w := f.do(t, http.MethodPost, "/suppliers", map[string]any{
			"name":  "Acme Corp",
			"email": "sales@acme.test",
		})

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_DELIVERY_FAILED")
		f.supplierRepo.AssertCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("returns 409 on duplicate name", func(t *testing.T) {
		f := newSupplierHandlerFixture(fixedSettings{})
		f.supplierRepo.On("ExistsByName", mock.Anything, "Acme Corp").Return(true, nil)

		w := f.do(t, http.MethodPost, "/suppliers", map[string]any{
			"name":  "Acme Corp",
			"email": "sales@acme.test",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestSupplierHandler_GetByID(t *testing.T) {
	t.Run("returns supplier", func(t *testing.T) {
		f := newSupplierHandlerFixture(fixedSettings{})
		sup := newTestSupplier(t)
		f.supplierRepo.On("FindByID", mock.Anything, sup.ID).Return(sup, nil)

		w := f.do(t, http.MethodGet, "/suppliers/"+sup.ID.String(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Acme Corp"`)
	})

	t.Run("rejects malformed id", func(t *testing.T) {
		f := newSupplierHandlerFixture(fixedSettings{})

		w := f.do(t, http.MethodGet, "/suppliers/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		f := newSupplierHandlerFixture(fixedSettings{})
		f.supplierRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

		w := f.do(t, http.MethodGet, "/suppliers/"+uuid.New().String(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_NOT_FOUND")
	})
}

func TestSupplierHandler_GetBySlug(t *testing.T) {
	f := newSupplierHandlerFixture(fixedSettings{})
	sup := newTestSupplier(t)
	f.supplierRepo.On("FindBySlug", mock.Anything, "acme-corp").Return(sup, nil)

	w := f.do(t, http.MethodGet, "/suppliers/slug/acme-corp", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slug":"acme-corp"`)
}

func TestSupplierHandler_List(t *testing.T) {
	t.Run("returns paginated list", func(t *testing.T) {
		f := newSupplierHandlerFixture(fixedSettings{})
		sup := newTestSupplier(t)
		f.supplierRepo.On("FindAll", mock.Anything, mock.Anything).Return([]supplier.Supplier{*sup}, nil)
		f.supplierRepo.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)

		w := f.do(t, http.MethodGet, "/suppliers?page=1&page_size=10", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":1`)
	})

	t.Run("rejects invalid merchant type", func(t *testing.T) {
		f := newSupplierHandlerFixture(fixedSettings{})

		w := f.do(t, http.MethodGet, "/suppliers?merchant_type=franchise", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSupplierHandler_Delete(t *testing.T) {
	t.Run("returns 204", func(t *testing.T) {
		f := newSupplierHandlerFixture(fixedSettings{})
		sup := newTestSupplier(t)
		f.supplierRepo.On("FindByID", mock.Anything, sup.ID).Return(sup, nil)
		f.supplierRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		w := f.do(t, http.MethodDelete, "/suppliers/"+sup.ID.String(), nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestSupplierHandler_LinkUser(t *testing.T) {
	t.Run("links user", func(t *testing.T) {
		f := newSupplierHandlerFixture(fixedSettings{})
		sup := newTestSupplier(t)
		user, err := identity.NewUser("buyer@acme.test", "s3cret-pass", "Buyer")
		require.NoError(t, err)

		f.supplierRepo.On("FindByID", mock.Anything, sup.ID).Return(sup, nil)
		f.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		f.supplierRepo.On("LinkUser", mock.Anything, sup.ID, user.ID).Return(nil)

		w := f.do(t, http.MethodPost, "/suppliers/"+sup.ID.String()+"/users", map[string]any{
			"user_id": user.ID.String(),
		})

		assert.Equal(t, http.StatusNoContent, w.Code)
		f.supplierRepo.AssertExpectations(t)
	})

	t.Run("rejects missing user id", func(t *testing.T) {
		f := newSupplierHandlerFixture(fixedSettings{})
		sup := newTestSupplier(t)

		w := f.do(t, http.MethodPost, "/suppliers/"+sup.ID.String()+"/users", map[string]any{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSupplierHandler_UnlinkUser(t *testing.T) {
	f := newSupplierHandlerFixture(fixedSettings{})
	sup := newTestSupplier(t)
	userID := uuid.New()

	f.supplierRepo.On("FindByID", mock.Anything, sup.ID).Return(sup, nil)
	f.supplierRepo.On("UnlinkUser", mock.Anything, sup.ID, userID).Return(nil)

	w := f.do(t, http.MethodDelete, "/suppliers/"+sup.ID.String()+"/users/"+userID.String(), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
