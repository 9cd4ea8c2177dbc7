package handlers

import (
	"rbac-user-manager/app/server/gen/oapi/api"
	"rbac-user-manager/app/server/jwt"
	"rbac-user-manager/app/server/passwords"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ api.ServerInterface = (*App)(nil)

type App struct {
	l        *zap.Logger       // 日志
	db       *gorm.DB          // 数据库
	rdb      *redis.Client     // Redis ，角色缓存，可以为 nil
	jwt      *jwt.JWT          // JWT ，用于无状态验证
	hasher   *passwords.Hasher // 密码哈希
	adminKey string            // 管理员注册密钥
}

func NewApp(l *zap.Logger, db *gorm.DB, rdb *redis.Client, j *jwt.JWT, hasher *passwords.Hasher, adminKey string) *App {
	return &App{
		l:        l,
		db:       db,
		rdb:      rdb,
		jwt:      j,
		hasher:   hasher,
		adminKey: adminKey,
	}
}
