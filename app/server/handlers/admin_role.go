package handlers

import (
	"context"
	"errors"
	"net/http"
	"rbac-user-manager/app/server/errs"
	"rbac-user-manager/app/server/gen/oapi/api"
	"rbac-user-manager/app/server/models"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	msgRoleNotFound = "Role not found"
	msgRoleExists   = "Role already exists"
)

func (a *App) findRole(ctx context.Context, id uint) (*models.Role, error) {
	var role models.Role
	if err := a.db.WithContext(ctx).First(&role, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, errs.NotFound(msgRoleNotFound)
		}
		return nil, errs.Internal("Error fetching role", err)
	}
	return &role, nil
}

func roleInfo(role *models.Role) api.Role {
	return api.Role{
		Id:       role.ID,
		Rolename: role.RoleName,
		Permissions: api.RolePermissions{
			Read:   role.Permissions.Read,
			Write:  role.Permissions.Write,
			Delete: role.Permissions.Delete,
		},
	}
}

func rolePermissions(p api.RolePermissions) models.RolePermissions {
	return models.RolePermissions{
		Read:   p.Read,
		Write:  p.Write,
		Delete: p.Delete,
	}
}

func (a *App) RoleCreate(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req api.RoleCreateJSONRequestBody
	if err := c.Bind(&req); err != nil {
		a.l.Debug("failed to bind request", zap.Error(err))
		return a.fail(c, errs.Validation("Invalid request body"))
	}

	roleName := strings.TrimSpace(req.Rolename)
	if roleName == "" {
		return a.fail(c, errs.Validation("Role name is required"))
	}

	// 角色名不能重复
	var count int64
	if err := a.db.WithContext(rctx).Model(&models.Role{}).Where("rolename = ?", roleName).Count(&count).Error; err != nil {
		return a.fail(c, errs.Internal("Error creating role", err))
	} else if count > 0 {
		return a.fail(c, errs.Conflict(msgRoleExists))
	}

	// 创建角色
	role := models.Role{
		RoleName: roleName,
	}
	if req.Permissions != nil {
		role.Permissions = rolePermissions(*req.Permissions)
	}
	if err := a.db.WithContext(rctx).Create(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return a.fail(c, errs.Conflict(msgRoleExists))
		}
		return a.fail(c, errs.Internal("Error creating role", err))
	}

	// 之前可能缓存过同名的旧角色
	a.roleCacheClear(rctx, role.RoleName)

	return c.JSON(http.StatusCreated, roleInfo(&role))
}

func (a *App) RoleList(c echo.Context, params api.RoleListParams) error {
	rctx := c.Request().Context()

	var (
		roles      []models.Role
		rolesCount int64
	)

	showAll, pageIndex, pageLimit := a.parsePagination(params.Page, params.Limit)
	queryBase := a.db.WithContext(rctx).Model(&models.Role{}).Order("id ASC")
	if !showAll {
		queryBase = queryBase.Limit(pageLimit).Offset(pageIndex * pageLimit)
	}

	if err := queryBase.Find(&roles).Error; err != nil {
		return a.fail(c, errs.Internal("Error fetching roles", err))
	}
	if err := a.db.WithContext(rctx).Model(&models.Role{}).Count(&rolesCount).Error; err != nil {
		return a.fail(c, errs.Internal("Error fetching roles", err))
	}

	resRoles := []api.Role{}
	for i := range roles {
		resRoles = append(resRoles, roleInfo(&roles[i]))
	}

	return c.JSON(http.StatusOK, &api.RoleListResponse{
		Limit:   pageLimit,
		PageMax: a.calcMaxPage(rolesCount, showAll, pageLimit),
		List:    resRoles,
	})
}

func (a *App) RoleInfoGet(c echo.Context, id uint) error {
	role, err := a.findRole(c.Request().Context(), id)
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, roleInfo(role))
}

// RoleInfoUpdate 只修改权限；已有用户的权限快照不会随之变化
func (a *App) RoleInfoUpdate(c echo.Context, id uint) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req api.RoleInfoUpdateJSONRequestBody
	if err := c.Bind(&req); err != nil {
		a.l.Debug("failed to bind request", zap.Error(err))
		return a.fail(c, errs.Validation("Invalid request body"))
	}

	role, err := a.findRole(rctx, id)
	if err != nil {
		return a.fail(c, err)
	}

	// 角色名是用户引用角色的键，不允许修改
	if req.Rolename != nil && strings.TrimSpace(*req.Rolename) != role.RoleName {
		return a.fail(c, errs.Validation("Role name cannot be changed"))
	}

	if req.Permissions != nil {
		role.Permissions = rolePermissions(*req.Permissions)
	}

	// 写入前后各清理一次缓存
	a.roleCacheClear(rctx, role.RoleName)
	defer a.roleCacheClear(rctx, role.RoleName)

	// 更新角色信息
	if err = a.db.WithContext(rctx).Save(role).Error; err != nil {
		return a.fail(c, errs.Internal("Error updating role", err))
	}

	return c.JSON(http.StatusOK, &api.RoleUpdateResponse{
		Message: "Role updated successfully",
		Role:    roleInfo(role),
	})
}

// RoleDelete 不级联：引用该角色的用户保留原角色名
func (a *App) RoleDelete(c echo.Context, id uint) error {
	rctx := c.Request().Context()

	role, err := a.findRole(rctx, id)
	if err != nil {
		return a.fail(c, err)
	}

	a.roleCacheClear(rctx, role.RoleName)
	defer a.roleCacheClear(rctx, role.RoleName)

	// 删除角色
	if err = a.db.WithContext(rctx).Delete(&models.Role{}, role.ID).Error; err != nil {
		return a.fail(c, errs.Internal("Error deleting role", err))
	}

	a.l.Info("role deleted", zap.Uint("id", role.ID), zap.String("rolename", role.RoleName))

	return c.JSON(http.StatusOK, &api.Message{
		Message: "Role deleted successfully",
	})
}
