package cookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinematch/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJar(secure bool) *Jar {
	cfg := &config.Config{}
	cfg.Session.CookieName = "cinematch_session"
	cfg.Session.Secure = secure

	return NewJar(cfg)
}

func TestJar_Set(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/auth/login", nil), rec)

	newJar(true).Set(c, "u1", 7*24*time.Hour)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	ck := cookies[0]
	assert.Equal(t, "cinematch_session", ck.Name)
	assert.Equal(t, "u1", ck.Value)
	assert.Equal(t, "/", ck.Path)
	assert.Equal(t, 604800, ck.MaxAge)
	assert.True(t, ck.HttpOnly)
	assert.True(t, ck.Secure)
	assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
}

func TestJar_Clear(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/auth/logout", nil), rec)

	newJar(false).Clear(c)

	header := rec.Header().Get("Set-Cookie")
	assert.Contains(t, header, "cinematch_session=;")
	assert.Contains(t, header, "Max-Age=0")
}

func TestJar_Value(t *testing.T) {
	jar := newJar(false)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.AddCookie(&http.Cookie{Name: "cinematch_session", Value: "u1"})
	value, ok := jar.Value(e.NewContext(req, httptest.NewRecorder()))
	assert.True(t, ok)
	assert.Equal(t, "u1", value)

	_, ok = jar.Value(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/me", nil), httptest.NewRecorder()))
	assert.False(t, ok)
}
