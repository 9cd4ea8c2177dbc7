package handlers

import (
	"net/http"
	"rbac-user-manager/app/server/errs"
	"rbac-user-manager/app/server/gen/oapi/api"
	"rbac-user-manager/app/server/middlewares"

	"github.com/labstack/echo/v4"
)

// AuthLogout 令牌是无状态的，服务端没有可以吊销的东西，客户端自行丢弃即可
func (a *App) AuthLogout(c echo.Context) error {
	return c.JSON(http.StatusOK, &api.Message{
		Message: "Logged out successfully",
	})
}

// AuthVerify 返回已验证令牌中的身份，供客户端决定跳转到哪个面板
func (a *App) AuthVerify(c echo.Context) error {
	jwtUser, ok := middlewares.JwtUser(c)
	if !ok {
		return a.fail(c, errs.Auth("Invalid or missing token"))
	}

	return c.JSON(http.StatusOK, &api.VerifyResponse{
		UserId:    jwtUser.ID,
		Role:      jwtUser.Role,
		ExpiresAt: jwtUser.Expires,
	})
}
