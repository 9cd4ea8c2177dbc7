package handlers

import (
	"context"
	"net/http"
	"rbac-user-manager/app/server/constants"
	"rbac-user-manager/app/server/errs"
	"rbac-user-manager/app/server/gen/oapi/api"
	"rbac-user-manager/app/server/jwt"
	"rbac-user-manager/app/server/models"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// 邮箱不存在与密码错误返回同样的信息，避免泄露哪些邮箱已注册
const msgInvalidCredentials = "Invalid email or password"

func (a *App) AuthLogin(c echo.Context) error {
	// 绑定请求体
	var req api.AuthLoginJSONRequestBody
	if err := c.Bind(&req); err != nil {
		a.l.Debug("failed to bind json body", zap.Error(err))
		return a.fail(c, errs.Validation("Invalid request body"))
	}

	token, user, err := a.login(c.Request().Context(), &req)
	if err != nil {
		return a.fail(c, err)
	}

	// 返回
	return c.JSON(http.StatusOK, &api.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    *user,
	})
}

func (a *App) login(ctx context.Context, req *api.LoginRequest) (string, *api.UserInfo, error) {
	var user models.User
	if err := a.db.WithContext(ctx).First(&user, "email = ?", normalizeEmail(req.Email)).Error; err != nil {
		if isNotFound(err) {
			// 不存在的邮箱也做一次校验，响应耗时与密码错误一致
			a.hasher.VerifyDummy(req.Password)
			return "", nil, errs.Auth(msgInvalidCredentials)
		}
		return "", nil, errs.Internal("Internal server error", err)
	}

	// 停用的账户不能登录
	if user.Status == constants.UserStatusInactive {
		return "", nil, errs.Forbidden("User is inactive! Please contact admin.")
	}

	// 提取密码 hash 并进行校验
	if match, err := a.hasher.Verify(user.Password, req.Password); err != nil {
		return "", nil, errs.Internal("Internal server error", err)
	} else if !match {
		return "", nil, errs.Auth(msgInvalidCredentials)
	}

	// 按角色当前的设置计算权限，而不是用户记录中的快照
	permissions, err := a.livePermissions(ctx, user.Role)
	if err != nil {
		return "", nil, errs.Internal("Internal server error", err)
	}

	// 签出 JWT
	expires := a.jwt.Now().Add(constants.AuthTokenDuration)
	token, err := a.jwt.SignToken(&jwt.User{
		ID:      user.ID,
		Role:    user.Role,
		Expires: expires.Unix(),
	})
	if err != nil {
		return "", nil, errs.Internal("Internal server error", err)
	}

	info := userInfo(&user)
	info.Permissions = permissions

	return token, &info, nil
}
