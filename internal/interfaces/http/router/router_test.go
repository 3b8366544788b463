package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func ok(body string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, body)
	}
}

func TestRouter_DefaultVersion(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	r.Register(NewDomainGroup("suppliers", "/suppliers").GET("", ok("list")))
	r.Setup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/suppliers", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "list", w.Body.String())
}

func TestRouter_WithAPIVersion(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v2"))

	r.Register(NewDomainGroup("suppliers", "/suppliers").GET("", ok("v2 list")))
	r.Setup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v2/suppliers", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_Use(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("X-Api-Middleware", "applied")
		c.Next()
	})

	r.Register(NewDomainGroup("suppliers", "/suppliers").GET("", ok("list")))
	r.Setup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/suppliers", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, "applied", w.Header().Get("X-Api-Middleware"))
}

func TestDomainGroup_Methods(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	dg := NewDomainGroup("suppliers", "/suppliers").
		GET("/:id", ok("get")).
		POST("", ok("create")).
		PUT("/:id", ok("update")).
		PATCH("/:id", ok("patch")).
		DELETE("/:id", ok("delete"))
	r.Register(dg)
	r.Setup()

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/v1/suppliers/42", "get"},
		{http.MethodPost, "/api/v1/suppliers", "create"},
		{http.MethodPut, "/api/v1/suppliers/42", "update"},
		{http.MethodPatch, "/api/v1/suppliers/42", "patch"},
		{http.MethodDelete, "/api/v1/suppliers/42", "delete"},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(tt.method, tt.path, nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "%s %s", tt.method, tt.path)
		assert.Equal(t, tt.body, w.Body.String())
	}
}

func TestDomainGroup_Subgroup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	dg := NewDomainGroup("suppliers", "/suppliers")
	dg.Group("stock-locations", "/:id/stock-locations").GET("", ok("locations"))
	r.Register(dg)
	r.Setup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/suppliers/42/stock-locations", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "locations", w.Body.String())
}

func TestDomainGroup_Middleware(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	dg := NewDomainGroup("suppliers", "/suppliers")
	dg.Use(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusForbidden)
	})
	dg.GET("", ok("list"))
	r.Register(dg)
	r.Setup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/suppliers", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
