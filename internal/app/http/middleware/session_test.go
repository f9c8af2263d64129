package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gallery-app/internal/app/http/middleware"
	"gallery-app/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.SessionID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("session_id"))
	})
	return r
}

func TestSessionID(t *testing.T) {

	t.Run("NoCookieIssuesValidID", func(t *testing.T) {
		r := sessionRouter()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, session.IsValidID(w.Body.String()))
		assert.Contains(t, w.Header().Get("Set-Cookie"), "gallery_session=")
	})

	t.Run("ValidCookieKept", func(t *testing.T) {
		r := sessionRouter()
		id := strings.Repeat("cd", 16)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "gallery_session", Value: id})
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, id, w.Body.String())
		assert.Empty(t, w.Header().Get("Set-Cookie"))
	})

	t.Run("TraversalCookieReplaced", func(t *testing.T) {
		r := sessionRouter()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "gallery_session", Value: "../../some/path"})
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		got := w.Body.String()
		assert.NotEqual(t, "../../some/path", got)
		assert.True(t, session.IsValidID(got))
		assert.Contains(t, w.Header().Get("Set-Cookie"), "gallery_session=")
	})

	t.Run("MalformedCookieReplaced", func(t *testing.T) {
		r := sessionRouter()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "gallery_session", Value: "DEADBEEF"})
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, session.IsValidID(w.Body.String()))
	})
}
