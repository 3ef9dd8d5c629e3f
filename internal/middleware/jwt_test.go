package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyspaces/classroom-reservation/internal/model"
	"github.com/studyspaces/classroom-reservation/internal/utils"
)

const testSecret = "test-secret"

func authedContext(e *echo.Echo, token string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestJWTAuth(t *testing.T) {
	e := echo.New()
	mw := JWTAuth(testSecret)
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	t.Run("Should inject subject and role for a valid token", func(t *testing.T) {
		access, err := utils.NewAccessToken(testSecret, "a@university.edu", "student", 5)
		require.NoError(t, err)
		c, rec := authedContext(e, access.Token)
		require.NoError(t, mw(next)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "a@university.edu", c.Get(CtxSubject))
		assert.Equal(t, "student", c.Get(CtxRole))
	})
	t.Run("Should reject a missing header", func(t *testing.T) {
		c, rec := authedContext(e, "")
		require.NoError(t, mw(next)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
	t.Run("Should reject a token signed with another secret", func(t *testing.T) {
		access, err := utils.NewAccessToken("other-secret", "a@university.edu", "student", 5)
		require.NoError(t, err)
		c, rec := authedContext(e, access.Token)
		require.NoError(t, mw(next)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	mw := RequireRole(model.RoleAssigner)

	t.Run("Should allow the listed role", func(t *testing.T) {
		c, rec := authedContext(e, "")
		c.Set(CtxRole, "assigner")
		require.NoError(t, mw(next)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
	t.Run("Should forbid other roles", func(t *testing.T) {
		c, rec := authedContext(e, "")
		c.Set(CtxRole, "student")
		require.NoError(t, mw(next)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
	t.Run("Should forbid a missing role", func(t *testing.T) {
		c, rec := authedContext(e, "")
		require.NoError(t, mw(next)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
