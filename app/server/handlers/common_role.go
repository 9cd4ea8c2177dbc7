package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"rbac-user-manager/app/server/constants"
	"rbac-user-manager/app/server/models"
	"rbac-user-manager/app/server/rbac"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// roleByName 按名称查找角色，优先查询缓存；角色不存在时返回的错误满足 errors.Is(err, gorm.ErrRecordNotFound)
func (a *App) roleByName(ctx context.Context, name string) (*models.Role, error) {
	var role models.Role

	// 查询缓存
	cacheKey := fmt.Sprintf(constants.CacheKeyRoleInfo, name)
	if a.rdb != nil {
		if cacheBytes, err := a.rdb.Get(ctx, cacheKey).Bytes(); err != nil {
			if !errors.Is(err, redis.Nil) {
				a.l.Error("failed to query cache for role info", zap.String("rolename", name), zap.Error(err))
			}
		} else if err = json.Unmarshal(cacheBytes, &role); err != nil {
			a.l.Error("failed to unmarshal role info", zap.String("rolename", name), zap.ByteString("cacheBytes", cacheBytes), zap.Error(err))
			// 可能是无效的缓存，清理掉
			a.rdb.Del(ctx, cacheKey)
		} else {
			return &role, nil
		}
	}

	// 查询数据库
	if err := a.db.WithContext(ctx).First(&role, "rolename = ?", name).Error; err != nil {
		return nil, fmt.Errorf("find role %s: %w", name, err)
	}

	// 格式化并加入缓存，方便下一次查询
	if a.rdb != nil {
		if cacheBytes, err := json.Marshal(&role); err != nil {
			a.l.Error("failed to marshal role info", zap.String("rolename", name), zap.Error(err))
		} else {
			a.rdb.Set(ctx, cacheKey, cacheBytes, constants.CacheExpireRoleInfo)
		}
	}

	return &role, nil
}

// roleCacheClear 在角色修改或删除后清理缓存
func (a *App) roleCacheClear(ctx context.Context, name string) {
	if a.rdb == nil {
		return
	}

	if err := a.rdb.Del(ctx, fmt.Sprintf(constants.CacheKeyRoleInfo, name)).Err(); err != nil {
		a.l.Error("failed to clear role cache", zap.String("rolename", name), zap.Error(err))
	}
}

// livePermissions 用角色当前的权限计算用户权限；角色已被删除时为空
func (a *App) livePermissions(ctx context.Context, roleName string) ([]string, error) {
	role, err := a.roleByName(ctx, roleName)
	if err != nil {
		if isNotFound(err) {
			return []string{}, nil
		}
		return nil, err
	}

	return rbac.Derive(role.Permissions), nil
}
