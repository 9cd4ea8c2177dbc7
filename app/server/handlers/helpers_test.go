package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rbac-user-manager/app/server/constants"
	"rbac-user-manager/app/server/gen/oapi/api"
	"rbac-user-manager/app/server/inits"
	"rbac-user-manager/app/server/jwt"
	"rbac-user-manager/app/server/models"
	"rbac-user-manager/app/server/passwords"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testAdminKey = "let-me-admin"

type testEnv struct {
	app *App
	e   *echo.Echo
	db  *gorm.DB
	now time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWithRedis(t, nil)
}

func newTestEnvWithRedis(t *testing.T, rdb *redis.Client) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// 内存数据库每个连接各自独立，只保留一个连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, inits.Prepare(db))

	hasher, err := passwords.New(passwords.AlgoBcrypt)
	require.NoError(t, err)

	env := &testEnv{db: db, now: time.Now()}

	j, err := jwt.New("test-signature-key")
	require.NoError(t, err)
	j = j.WithClock(func() time.Time { return env.now })

	env.app = NewApp(zaptest.NewLogger(t), db, rdb, j, hasher, testAdminKey)
	env.e = echo.New()
	require.NoError(t, RegisterHandlers(env.e, env.app))

	return env
}

func (env *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func ptr[T any](v T) *T {
	return &v
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (env *testEnv) register(t *testing.T, name, email, password, adminKey string) *httptest.ResponseRecorder {
	t.Helper()

	return env.do(t, http.MethodPost, "/api/auth/register", &api.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
		AdminKey: ptr(adminKey),
	}, "")
}

func (env *testEnv) login(t *testing.T, email, password string) *httptest.ResponseRecorder {
	t.Helper()

	return env.do(t, http.MethodPost, "/api/auth/login", &api.LoginRequest{
		Email:    email,
		Password: password,
	}, "")
}

// adminToken 注册一个管理员并登录，返回令牌
func (env *testEnv) adminToken(t *testing.T) string {
	t.Helper()

	rec := env.register(t, "Root", "root@x.com", "rootpw", testAdminKey)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return env.tokenOf(t, "root@x.com", "rootpw")
}

func (env *testEnv) userToken(t *testing.T, email string) string {
	t.Helper()

	rec := env.register(t, "Someone", email, "userpw", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return env.tokenOf(t, email, "userpw")
}

func (env *testEnv) tokenOf(t *testing.T, email, password string) string {
	t.Helper()

	rec := env.login(t, email, password)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[api.LoginResponse](t, rec).Token
}

func (env *testEnv) userByEmail(t *testing.T, email string) models.User {
	t.Helper()

	var user models.User
	require.NoError(t, env.db.First(&user, "email = ?", email).Error)
	return user
}

func (env *testEnv) roleByName(t *testing.T, name string) models.Role {
	t.Helper()

	var role models.Role
	require.NoError(t, env.db.First(&role, "rolename = ?", name).Error)
	return role
}

func (env *testEnv) deactivate(t *testing.T, email string) {
	t.Helper()

	require.NoError(t, env.db.Model(&models.User{}).
		Where("email = ?", email).
		Update("status", constants.UserStatusInactive).Error)
}
