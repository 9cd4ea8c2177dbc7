package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"rbac-user-manager/app/server/constants"
	"rbac-user-manager/app/server/gen/oapi/api"
	"rbac-user-manager/app/server/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func (env *testEnv) createRole(t *testing.T, token, name string, perms api.RolePermissions) api.Role {
	t.Helper()

	rec := env.do(t, http.MethodPost, "/api/roles", &api.RoleCreateRequest{
		Rolename:    name,
		Permissions: &perms,
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[api.Role](t, rec)
}

func TestRoleCreate(t *testing.T) {
	env := newTestEnv(t)
	admin := env.adminToken(t)

	role := env.createRole(t, admin, "  editor ", api.RolePermissions{Read: true, Write: true})
	assert.NotZero(t, role.Id)
	assert.Equal(t, "editor", role.Rolename)
	assert.True(t, role.Permissions.Read)
	assert.True(t, role.Permissions.Write)
	assert.False(t, role.Permissions.Delete)

	rec := env.do(t, http.MethodPost, "/api/roles", &api.RoleCreateRequest{Rolename: "editor"}, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgRoleExists, decode[api.ErrorMessage](t, rec).Message)

	rec = env.do(t, http.MethodPost, "/api/roles", &api.RoleCreateRequest{Rolename: "   "}, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Role name is required", decode[api.ErrorMessage](t, rec).Message)

	// 新角色可以直接分配给用户
	rec = env.do(t, http.MethodPost, "/api/users", &api.UserCreateRequest{
		Name:     "Ed",
		Email:    "ed@x.com",
		Password: "pw",
		Role:     ptr("editor"),
	}, admin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, []string{"read", "write"}, decode[api.UserInfo](t, rec).Permissions)

	// 不带权限创建时三项都为 false
	role = env.createRole(t, admin, "viewer", api.RolePermissions{})
	assert.Equal(t, api.RolePermissions{}, role.Permissions)
}

func TestRoleListAndGet(t *testing.T) {
	env := newTestEnv(t)
	admin := env.adminToken(t)

	rec := env.do(t, http.MethodGet, "/api/roles", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[api.RoleListResponse](t, rec)
	require.Len(t, list.List, 2)
	assert.Equal(t, int64(1), list.PageMax)

	names := []string{list.List[0].Rolename, list.List[1].Rolename}
	assert.ElementsMatch(t, []string{constants.RoleAdmin, constants.RoleUser}, names)

	adminRole := env.roleByName(t, constants.RoleAdmin)
	rec = env.do(t, http.MethodGet, fmt.Sprintf("/api/roles/%d", adminRole.ID), nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[api.Role](t, rec)
	assert.Equal(t, adminRole.ID, got.Id)
	assert.Equal(t, api.RolePermissions{Read: true, Write: true, Delete: true}, got.Permissions)

	rec = env.do(t, http.MethodGet, "/api/roles/x", nil, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[api.ErrorMessage](t, rec).Message, "Invalid format for parameter id")

	rec = env.do(t, http.MethodGet, "/api/roles/0", nil, admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// 分页
	rec = env.do(t, http.MethodGet, "/api/roles?page=2&limit=1", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	list = decode[api.RoleListResponse](t, rec)
	require.Len(t, list.List, 1)
	assert.Equal(t, 1, list.Limit)
	assert.Equal(t, int64(2), list.PageMax)
	assert.Equal(t, constants.RoleUser, list.List[0].Rolename)

	rec = env.do(t, http.MethodGet, "/api/roles?limit=-1", nil, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/roles/9999", nil, admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, msgRoleNotFound, decode[api.ErrorMessage](t, rec).Message)
}

func TestRoleUpdateKeepsUserSnapshots(t *testing.T) {
	env := newTestEnv(t)
	admin := env.adminToken(t)
	require.Equal(t, http.StatusCreated, env.register(t, "Alice", "alice@x.com", "pw", "").Code)

	userRole := env.roleByName(t, constants.RoleUser)
	perms := api.RolePermissions{Read: true, Write: true}
	rec := env.do(t, http.MethodPut, fmt.Sprintf("/api/roles/%d", userRole.ID), &api.RoleUpdateRequest{
		Permissions: &perms,
	}, admin)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decode[api.RoleUpdateResponse](t, rec)
	assert.Equal(t, "Role updated successfully", res.Message)
	assert.Equal(t, perms, res.Role.Permissions)

	// 已保存的快照不变，登录时使用角色当前的权限
	assert.Equal(t, []string{"read"}, env.userByEmail(t, "alice@x.com").Permissions)
	rec = env.login(t, "alice@x.com", "pw")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"read", "write"}, decode[api.LoginResponse](t, rec).User.Permissions)

	// 新注册的用户拿到新的权限
	require.Equal(t, http.StatusCreated, env.register(t, "Bob", "bob@x.com", "pw", "").Code)
	assert.Equal(t, []string{"read", "write"}, env.userByEmail(t, "bob@x.com").Permissions)
}

func TestRoleUpdateRejectsRename(t *testing.T) {
	env := newTestEnv(t)
	admin := env.adminToken(t)
	userRole := env.roleByName(t, constants.RoleUser)
	path := fmt.Sprintf("/api/roles/%d", userRole.ID)

	renamed := "member"
	rec := env.do(t, http.MethodPut, path, &api.RoleUpdateRequest{Rolename: &renamed}, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Role name cannot be changed", decode[api.ErrorMessage](t, rec).Message)

	// 提交相同的名字是允许的
	same := constants.RoleUser
	rec = env.do(t, http.MethodPut, path, &api.RoleUpdateRequest{Rolename: &same}, admin)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userRole.Permissions, env.roleByName(t, constants.RoleUser).Permissions)

	rec = env.do(t, http.MethodPut, "/api/roles/9999", &api.RoleUpdateRequest{}, admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoleDeleteDoesNotCascade(t *testing.T) {
	env := newTestEnv(t)
	admin := env.adminToken(t)
	require.Equal(t, http.StatusCreated, env.register(t, "Alice", "alice@x.com", "pw", "").Code)

	userRole := env.roleByName(t, constants.RoleUser)
	path := fmt.Sprintf("/api/roles/%d", userRole.ID)

	rec := env.do(t, http.MethodDelete, path, nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Role deleted successfully", decode[api.Message](t, rec).Message)

	rec = env.do(t, http.MethodDelete, path, nil, admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// 用户保留原角色名
	alice := env.userByEmail(t, "alice@x.com")
	assert.Equal(t, constants.RoleUser, alice.Role)

	rec = env.login(t, "alice@x.com", "pw")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[api.LoginResponse](t, rec).User.Permissions)

	// 默认角色不存在时注册失败
	rec = env.register(t, "Bob", "bob@x.com", "pw", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Role 'user' does not exist", decode[api.ErrorMessage](t, rec).Message)

	// 引用已删除角色的用户仍然可以被删除
	rec = env.do(t, http.MethodDelete, fmt.Sprintf("/api/users/%d", alice.ID), nil, admin)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "User deleted successfully", decode[api.Message](t, rec).Message)

	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Where("id = ?", alice.ID).Count(&count).Error)
	assert.Zero(t, count)
	assert.ErrorIs(t, env.db.First(&models.User{}, "email = ?", "alice@x.com").Error, gorm.ErrRecordNotFound)
}

func TestRoleCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	env := newTestEnvWithRedis(t, rdb)
	admin := env.adminToken(t)

	cacheKey := fmt.Sprintf(constants.CacheKeyRoleInfo, constants.RoleUser)

	// 注册时查询角色，写入缓存
	require.Equal(t, http.StatusCreated, env.register(t, "Alice", "alice@x.com", "pw", "").Code)
	require.True(t, mr.Exists(cacheKey))
	assert.Equal(t, constants.CacheExpireRoleInfo, mr.TTL(cacheKey))

	raw, err := mr.Get(cacheKey)
	require.NoError(t, err)
	var cached models.Role
	require.NoError(t, json.Unmarshal([]byte(raw), &cached))
	assert.Equal(t, constants.RoleUser, cached.RoleName)
	assert.Equal(t, models.RolePermissions{Read: true}, cached.Permissions)

	// 修改角色后缓存失效
	userRole := env.roleByName(t, constants.RoleUser)
	perms := api.RolePermissions{Read: true, Delete: true}
	rec := env.do(t, http.MethodPut, fmt.Sprintf("/api/roles/%d", userRole.ID), &api.RoleUpdateRequest{
		Permissions: &perms,
	}, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, mr.Exists(cacheKey))

	rec = env.login(t, "alice@x.com", "pw")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"read", "delete"}, decode[api.LoginResponse](t, rec).User.Permissions)
	assert.True(t, mr.Exists(cacheKey))

	// 删除角色后缓存失效
	rec = env.do(t, http.MethodDelete, fmt.Sprintf("/api/roles/%d", userRole.ID), nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, mr.Exists(cacheKey))

	rec = env.login(t, "alice@x.com", "pw")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[api.LoginResponse](t, rec).User.Permissions)
}

func TestRoleCacheIgnoresBrokenEntry(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	env := newTestEnvWithRedis(t, rdb)
	cacheKey := fmt.Sprintf(constants.CacheKeyRoleInfo, constants.RoleUser)
	require.NoError(t, mr.Set(cacheKey, "{not json"))

	role, err := env.app.roleByName(context.Background(), constants.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, constants.RoleUser, role.RoleName)

	// 无效的缓存被替换为数据库中的值
	raw, err := mr.Get(cacheKey)
	require.NoError(t, err)
	assert.Contains(t, raw, `"rolename":"user"`)
}

func TestRoleCacheClearedAroundWrites(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	env := newTestEnvWithRedis(t, rdb)
	admin := env.adminToken(t)
	require.Equal(t, http.StatusCreated, env.register(t, "Alice", "alice@x.com", "pw", "").Code)

	userRole := env.roleByName(t, constants.RoleUser)
	cacheKey := fmt.Sprintf(constants.CacheKeyRoleInfo, constants.RoleUser)
	stale, err := json.Marshal(&userRole)
	require.NoError(t, err)

	// 模拟写入过程中另一个请求把旧值写回缓存
	plant := func(tx *gorm.DB) {
		if tx.Statement.Table == "roles" {
			require.NoError(t, mr.Set(cacheKey, string(stale)))
		}
	}
	require.NoError(t, env.db.Callback().Update().Before("gorm:update").Register("test:plant_stale_role", plant))
	require.NoError(t, env.db.Callback().Delete().Before("gorm:delete").Register("test:plant_stale_role", plant))

	// 写入前已经存在的旧缓存
	require.NoError(t, mr.Set(cacheKey, string(stale)))

	rec := env.do(t, http.MethodPut, fmt.Sprintf("/api/roles/%d", userRole.ID), &api.RoleUpdateRequest{
		Permissions: &api.RolePermissions{Read: true, Write: true, Delete: true},
	}, admin)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.False(t, mr.Exists(cacheKey))

	rec = env.login(t, "alice@x.com", "pw")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"read", "write", "delete"}, decode[api.LoginResponse](t, rec).User.Permissions)

	rec = env.do(t, http.MethodDelete, fmt.Sprintf("/api/roles/%d", userRole.ID), nil, admin)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.False(t, mr.Exists(cacheKey))

	rec = env.login(t, "alice@x.com", "pw")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[api.LoginResponse](t, rec).User.Permissions)
}
