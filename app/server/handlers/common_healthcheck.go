package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HealthCheck 同时确认数据库可用
func (a *App) HealthCheck(c echo.Context) error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}
	if err = sqlDB.PingContext(c.Request().Context()); err != nil {
		a.l.Warn("database ping failed", zap.Error(err))
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}
