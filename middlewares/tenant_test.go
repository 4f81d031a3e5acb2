package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/alisherkhudoyberdiev/qrplatform/pkg/tenant"
)

func newTenantEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TenantRewrite(r, tenant.NewResolver("qrplatform.uz")))
	r.GET("/r/:subdomain/:locale", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"subdomain": c.Param("subdomain"),
			"locale":    c.Param("locale"),
		})
	})
	r.GET("/api/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestTenantRewriteDispatch(t *testing.T) {
	r := newTenantEngine()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "oshxona.qrplatform.uz"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"subdomain":"oshxona"`)
	assert.Contains(t, w.Body.String(), `"locale":"uz"`)
}

func TestTenantRewriteKeepsLocale(t *testing.T) {
	r := newTenantEngine()

	req := httptest.NewRequest(http.MethodGet, "/ru", nil)
	req.Host = "oshxona.localhost:3000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"locale":"ru"`)
}

func TestLocaleRedirect(t *testing.T) {
	r := newTenantEngine()

	req := httptest.NewRequest(http.MethodGet, "/admin/login?next=menu", nil)
	req.Host = "qrplatform.uz"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/uz/admin/login?next=menu", w.Header().Get("Location"))
}

func TestAPIPathBypassesResolution(t *testing.T) {
	r := newTenantEngine()

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Host = "oshxona.qrplatform.uz"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestReservedSubdomainNoRewrite(t *testing.T) {
	r := newTenantEngine()

	req := httptest.NewRequest(http.MethodGet, "/uz", nil)
	req.Host = "www.qrplatform.uz"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Locale prefix present and no tenant: pass through, which has no page
	// route here.
	assert.Equal(t, http.StatusNotFound, w.Code)
}
