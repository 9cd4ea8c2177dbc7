package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rbac-user-manager/app/server/jwt"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newProtected(t *testing.T, j *jwt.JWT, m ...echo.MiddlewareFunc) *echo.Echo {
	t.Helper()

	e := echo.New()
	chain := append([]echo.MiddlewareFunc{Auth(j, zaptest.NewLogger(t))}, m...)
	e.GET("/protected", func(c echo.Context) error {
		user, ok := JwtUser(c)
		require.True(t, ok)
		return c.JSON(http.StatusOK, map[string]any{"id": user.ID, "role": user.Role})
	}, chain...)
	return e
}

func call(e *echo.Echo, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func sign(t *testing.T, j *jwt.JWT, id uint, role string, ttl time.Duration) string {
	t.Helper()

	token, err := j.SignToken(&jwt.User{ID: id, Role: role, Expires: j.Now().Add(ttl).Unix()})
	require.NoError(t, err)
	return token
}

func TestAuth(t *testing.T) {
	j, err := jwt.New("middleware-secret")
	require.NoError(t, err)
	e := newProtected(t, j)

	rec := call(e, sign(t, j, 7, "user", time.Hour))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":7,"role":"user"}`, rec.Body.String())

	rec = call(e, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid or missing token"}`, rec.Body.String())

	rec = call(e, "not.a.token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	other, err := jwt.New("another-secret")
	require.NoError(t, err)
	rec = call(e, sign(t, other, 7, "user", time.Hour))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthExpired(t *testing.T) {
	now := time.Now()
	j, err := jwt.New("middleware-secret")
	require.NoError(t, err)
	j = j.WithClock(func() time.Time { return now })
	e := newProtected(t, j)

	token := sign(t, j, 1, "user", time.Hour)
	now = now.Add(time.Hour + time.Second)

	rec := call(e, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Token expired, please login again"}`, rec.Body.String())
}

func TestRequireRole(t *testing.T) {
	j, err := jwt.New("middleware-secret")
	require.NoError(t, err)
	e := newProtected(t, j, RequireRole("admin"))

	rec := call(e, sign(t, j, 1, "admin", time.Hour))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = call(e, sign(t, j, 2, "user", time.Hour))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"Access denied: admin role required"}`, rec.Body.String())
}

func TestRequireRoleWithoutAuth(t *testing.T) {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RequireRole("admin"))

	rec := call(e, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
