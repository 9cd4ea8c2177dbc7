package handlers

import (
	"fmt"
	"net/http"
	"rbac-user-manager/app/server/gen/oapi/api"
	"rbac-user-manager/app/server/middlewares"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

const securitySchemeBearer = "bearerAuth"

// securedRouter 按文档中每个操作的 security 为路由加上令牌与角色校验
type securedRouter struct {
	*echo.Echo
	doc  *openapi3.T
	auth echo.MiddlewareFunc
}

// guards 查找 path 与 method 对应操作要求的中间件
func (r *securedRouter) guards(method string, path string) []echo.MiddlewareFunc {
	// echo 的 :id 对应文档中的 {id}
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") {
			segments[i] = "{" + seg[1:] + "}"
		}
	}

	item := r.doc.Paths.Find(strings.Join(segments, "/"))
	if item == nil {
		return nil
	}
	op := item.GetOperation(method)
	if op == nil {
		return nil
	}

	security := r.doc.Security
	if op.Security != nil {
		security = *op.Security
	}

	var m []echo.MiddlewareFunc
	for _, requirement := range security {
		scopes, ok := requirement[securitySchemeBearer]
		if !ok {
			continue
		}
		m = append(m, r.auth)
		for _, role := range scopes {
			m = append(m, middlewares.RequireRole(role))
		}
		break
	}
	return m
}

func (r *securedRouter) route(method string, path string, h echo.HandlerFunc, m []echo.MiddlewareFunc) *echo.Route {
	return r.Echo.Add(method, path, h, append(r.guards(method, path), m...)...)
}

func (r *securedRouter) GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.route(http.MethodGet, path, h, m)
}

func (r *securedRouter) POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.route(http.MethodPost, path, h, m)
}

func (r *securedRouter) PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.route(http.MethodPut, path, h, m)
}

func (r *securedRouter) DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.route(http.MethodDelete, path, h, m)
}

// RegisterHandlers 通过生成的路由表绑定所有路由；用户与角色管理只对 admin 开放
func RegisterHandlers(e *echo.Echo, a *App) error {
	doc, err := api.GetSwagger()
	if err != nil {
		return fmt.Errorf("load api document: %w", err)
	}

	api.RegisterHandlers(&securedRouter{
		Echo: e,
		doc:  doc,
		auth: middlewares.Auth(a.jwt, a.l),
	}, a)

	return nil
}
