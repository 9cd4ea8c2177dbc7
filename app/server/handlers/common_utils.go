package handlers

import (
	"errors"
	"rbac-user-manager/app/server/constants"
	"rbac-user-manager/app/server/errs"
	"rbac-user-manager/app/server/gen/oapi/api"
	"rbac-user-manager/app/server/models"
	"rbac-user-manager/app/server/passwords"
	"strings"

	"gorm.io/gorm"
)

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// optional 取出可选字段，缺省为空串
func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike 转义 LIKE 的通配符，配合 ESCAPE '\' 使用
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// 邮箱作为登录名，统一去空格并转为小写
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validStatus(status string) bool {
	return status == constants.UserStatusActive || status == constants.UserStatusInactive
}

func (a *App) hashPassword(password string) (string, error) {
	hash, err := a.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, passwords.ErrTooLong) {
			return "", errs.Validation("Password is too long")
		}
		return "", errs.Internal("Error hashing password", err)
	}
	return hash, nil
}

func userInfo(user *models.User) api.UserInfo {
	permissions := user.Permissions
	if permissions == nil {
		permissions = []string{}
	}

	return api.UserInfo{
		Id:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        user.Role,
		Status:      user.Status,
		Permissions: permissions,
	}
}
