package handlers

import (
	"rbac-user-manager/app/server/errs"
	"rbac-user-manager/app/server/gen/oapi/api"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// fail 把错误转换为 {"message": ...} 响应，内部错误只记录日志不返回原因
func (a *App) fail(c echo.Context, err error) error {
	kind := errs.KindOf(err)
	if kind == errs.KindInternal {
		a.l.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("URI", c.Request().RequestURI),
			zap.Error(err),
		)
	} else {
		a.l.Debug("request rejected", zap.Stringer("kind", kind), zap.Error(err))
	}

	return c.JSON(kind.StatusCode(), &api.ErrorMessage{
		Message: errs.Message(err),
	})
}
