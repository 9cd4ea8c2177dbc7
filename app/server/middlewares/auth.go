package middlewares

import (
	"errors"
	"net/http"
	"rbac-user-manager/app/server/constants"
	"rbac-user-manager/app/server/gen/oapi/api"
	"rbac-user-manager/app/server/jwt"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	msgTokenInvalid = "Invalid or missing token"
	msgTokenExpired = "Token expired, please login again"
)

// Auth 校验 Authorization: Bearer <token> ，通过后把 *jwt.User 放入 context
func Auth(j *jwt.JWT, l *zap.Logger) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: constants.ContextKeyJwtUser,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return j.ParseUser(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			l.Debug("rejected token", zap.String("URI", c.Request().RequestURI), zap.Error(err))

			msg := msgTokenInvalid
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = msgTokenExpired
			}
			return c.JSON(http.StatusUnauthorized, &api.ErrorMessage{
				Message: msg,
			})
		},
	})
}

// RequireRole 只放行令牌角色为 role 的请求，需要放在 Auth 之后
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			jwtUser, ok := JwtUser(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, &api.ErrorMessage{
					Message: msgTokenInvalid,
				})
			}

			if jwtUser.Role != role {
				return c.JSON(http.StatusForbidden, &api.ErrorMessage{
					Message: "Access denied: " + role + " role required",
				})
			}

			return next(c)
		}
	}
}

// JwtUser 取出 Auth 中间件放入的令牌信息
func JwtUser(c echo.Context) (*jwt.User, bool) {
	jwtUser, ok := c.Get(constants.ContextKeyJwtUser).(*jwt.User)
	return jwtUser, ok && jwtUser != nil
}
