package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"rbac-user-manager/app/server/constants"
	"rbac-user-manager/app/server/errs"
	"rbac-user-manager/app/server/gen/oapi/api"
	"rbac-user-manager/app/server/models"
	"rbac-user-manager/app/server/rbac"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *App) AuthRegister(c echo.Context) error {
	// 绑定请求体
	var req api.AuthRegisterJSONRequestBody
	if err := c.Bind(&req); err != nil {
		a.l.Debug("failed to bind json body", zap.Error(err))
		return a.fail(c, errs.Validation("Invalid request body"))
	}

	user, err := a.register(c.Request().Context(), &req)
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusCreated, &api.RegisterResponse{
		Message: "User registered successfully",
		User: api.RegisteredUser{
			Email:       user.Email,
			Role:        user.Role,
			Permissions: user.Permissions,
		},
	})
}

func (a *App) register(ctx context.Context, req *api.RegisterRequest) (*models.User, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return nil, errs.Validation("Name, email, and password are required")
	}

	// 决定角色
	roleName := constants.RoleUser
	if a.isAdminKey(optional(req.AdminKey)) {
		roleName = constants.RoleAdmin
	}

	// 邮箱不能重复
	if taken, err := a.emailTaken(ctx, email, 0); err != nil {
		return nil, errs.Internal("Error registering user", err)
	} else if taken {
		return nil, errs.Conflict("User already exists")
	}

	// 角色在启动时已经写入，这里仍然检查
	role, err := a.roleByName(ctx, roleName)
	if err != nil {
		if isNotFound(err) {
			return nil, errs.Configuration(fmt.Sprintf("Role '%s' does not exist", roleName))
		}
		return nil, errs.Internal("Error registering user", err)
	}

	// 处理密码
	passwordHash, err := a.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	// 创建用户
	user := models.User{
		Name:        name,
		Email:       email,
		Password:    passwordHash,
		Role:        role.RoleName,
		Status:      constants.UserStatusActive,
		Permissions: rbac.Derive(role.Permissions),
	}
	if err = a.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.Conflict("User already exists")
		}
		return nil, errs.Internal("Error registering user", err)
	}

	a.l.Info("user registered", zap.Uint("id", user.ID), zap.String("role", user.Role))

	return &user, nil
}

// isAdminKey 使用常量时间比较；未配置密钥时永远不匹配
func (a *App) isAdminKey(key string) bool {
	if a.adminKey == "" || key == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), []byte(a.adminKey)) == 1
}
