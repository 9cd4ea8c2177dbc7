package handlers

import (
	"context"
	"errors"
	"net/http"
	"rbac-user-manager/app/server/constants"
	"rbac-user-manager/app/server/errs"
	"rbac-user-manager/app/server/gen/oapi/api"
	"rbac-user-manager/app/server/middlewares"
	"rbac-user-manager/app/server/models"
	"rbac-user-manager/app/server/rbac"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	msgUserNotFound  = "User not found"
	msgUserExists    = "User already exists"
	msgInvalidRole   = "Invalid role"
	msgInvalidStatus = "Status must be Active or Inactive"
)

// emailTaken 检查邮箱是否已被 exceptID 以外的用户使用
func (a *App) emailTaken(ctx context.Context, email string, exceptID uint) (bool, error) {
	var count int64
	if err := a.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ? AND id <> ?", email, exceptID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// findUser 按 id 获得用户
func (a *App) findUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := a.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, errs.NotFound(msgUserNotFound)
		}
		return nil, errs.Internal("Error fetching user", err)
	}
	return &user, nil
}

// resolveRole 查找用户要使用的角色，不存在时为校验错误
func (a *App) resolveRole(ctx context.Context, name string) (*models.Role, error) {
	role, err := a.roleByName(ctx, name)
	if err != nil {
		if isNotFound(err) {
			return nil, errs.Validation(msgInvalidRole)
		}
		return nil, errs.Internal("Error fetching role", err)
	}
	return role, nil
}

func (a *App) UserCreate(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req api.UserCreateJSONRequestBody
	if err := c.Bind(&req); err != nil {
		a.l.Debug("failed to bind request", zap.Error(err))
		return a.fail(c, errs.Validation("Invalid request body"))
	}

	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return a.fail(c, errs.Validation("Name, email, and password are required"))
	}

	// 默认值
	roleName := optional(req.Role)
	if roleName == "" {
		roleName = constants.RoleUser
	}
	status := optional(req.Status)
	if status == "" {
		status = constants.UserStatusActive
	} else if !validStatus(status) {
		return a.fail(c, errs.Validation(msgInvalidStatus))
	}

	role, err := a.resolveRole(rctx, roleName)
	if err != nil {
		return a.fail(c, err)
	}

	if taken, err := a.emailTaken(rctx, email, 0); err != nil {
		return a.fail(c, errs.Internal("Error creating user", err))
	} else if taken {
		return a.fail(c, errs.Conflict(msgUserExists))
	}

	// 处理密码
	passwordHash, err := a.hashPassword(req.Password)
	if err != nil {
		return a.fail(c, err)
	}

	// 创建用户
	user := models.User{
		Name:        name,
		Email:       email,
		Password:    passwordHash,
		Role:        role.RoleName,
		Status:      status,
		Permissions: rbac.Derive(role.Permissions),
	}
	if err = a.db.WithContext(rctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return a.fail(c, errs.Conflict(msgUserExists))
		}
		return a.fail(c, errs.Internal("Error creating user", err))
	}

	return c.JSON(http.StatusCreated, userInfo(&user))
}

func (a *App) UserList(c echo.Context, params api.UserListParams) error {
	rctx := c.Request().Context()

	var (
		users      []models.User
		usersCount int64
	)

	filter := a.db.WithContext(rctx).Model(&models.User{})
	if search := strings.ToLower(strings.TrimSpace(optional(params.Search))); search != "" {
		// 通配符按字面匹配
		pattern := "%" + escapeLike(search) + "%"
		filter = filter.Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\'`, pattern, pattern)
	}

	showAll, pageIndex, pageLimit := a.parsePagination(params.Page, params.Limit)
	queryBase := filter.Session(&gorm.Session{}).Order("id ASC")
	if !showAll {
		queryBase = queryBase.Limit(pageLimit).Offset(pageIndex * pageLimit)
	}

	if err := queryBase.Find(&users).Error; err != nil {
		return a.fail(c, errs.Internal("Error fetching users", err))
	}
	if err := filter.Session(&gorm.Session{}).Count(&usersCount).Error; err != nil {
		return a.fail(c, errs.Internal("Error fetching users", err))
	}

	resUsers := []api.UserInfo{}
	for i := range users {
		resUsers = append(resUsers, userInfo(&users[i]))
	}

	return c.JSON(http.StatusOK, &api.UserListResponse{
		Limit:   pageLimit,
		PageMax: a.calcMaxPage(usersCount, showAll, pageLimit),
		List:    resUsers,
	})
}

func (a *App) UserInfoGetSelf(c echo.Context) error {
	// 这里是对用户本身的操作，没有指定 id ，从令牌中提取
	jwtUser, ok := middlewares.JwtUser(c)
	if !ok {
		return a.fail(c, errs.Auth("Invalid or missing token"))
	}

	rctx := c.Request().Context()

	user, err := a.findUser(rctx, jwtUser.ID)
	if err != nil {
		return a.fail(c, err)
	}

	// 自己的资料展示当前有效的权限
	info := userInfo(user)
	if info.Permissions, err = a.livePermissions(rctx, user.Role); err != nil {
		return a.fail(c, errs.Internal("Error fetching user", err))
	}

	return c.JSON(http.StatusOK, &info)
}

func (a *App) UserInfoGet(c echo.Context, id uint) error {
	// 从数据库中获得指定的用户
	user, err := a.findUser(c.Request().Context(), id)
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, userInfo(user))
}

func (a *App) UserInfoUpdate(c echo.Context, id uint) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req api.UserInfoUpdateJSONRequestBody
	if err := c.Bind(&req); err != nil {
		a.l.Debug("failed to bind request", zap.Error(err))
		return a.fail(c, errs.Validation("Invalid request body"))
	}

	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	if name == "" || email == "" {
		return a.fail(c, errs.Validation("Name and email are required"))
	}
	status := optional(req.Status)
	if status != "" && !validStatus(status) {
		return a.fail(c, errs.Validation(msgInvalidStatus))
	}

	// 从数据库中获得指定的用户
	user, err := a.findUser(rctx, id)
	if err != nil {
		return a.fail(c, err)
	}

	if email != user.Email {
		if taken, err := a.emailTaken(rctx, email, user.ID); err != nil {
			return a.fail(c, errs.Internal("Error updating user", err))
		} else if taken {
			return a.fail(c, errs.Conflict(msgUserExists))
		}
	}

	user.Name = name
	user.Email = email
	if status != "" {
		user.Status = status
	}

	// 指定了角色时，权限快照以新角色为准；否则允许直接设置权限列表
	if roleName := optional(req.Role); roleName != "" {
		role, err := a.resolveRole(rctx, roleName)
		if err != nil {
			return a.fail(c, err)
		}
		user.Role = role.RoleName
		user.Permissions = rbac.Derive(role.Permissions)
	} else if req.Permissions != nil {
		user.Permissions = rbac.Normalize(*req.Permissions)
	}

	// 提供了新密码才重新哈希
	if password := optional(req.Password); strings.TrimSpace(password) != "" {
		if user.Password, err = a.hashPassword(password); err != nil {
			return a.fail(c, err)
		}
	}

	// 更新用户信息
	if err = a.db.WithContext(rctx).Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return a.fail(c, errs.Conflict(msgUserExists))
		}
		return a.fail(c, errs.Internal("Error updating user", err))
	}

	return c.JSON(http.StatusOK, &api.UserUpdateResponse{
		Message: "User updated successfully",
		User:    userInfo(user),
	})
}

func (a *App) UserDelete(c echo.Context, id uint) error {
	// 删除用户
	result := a.db.WithContext(c.Request().Context()).Where("id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		return a.fail(c, errs.Internal("Error deleting user", result.Error))
	}
	if result.RowsAffected == 0 {
		return a.fail(c, errs.NotFound(msgUserNotFound))
	}

	a.l.Info("user deleted", zap.Uint("id", id))

	return c.JSON(http.StatusOK, &api.Message{
		Message: "User deleted successfully",
	})
}
