package models

import "time"

type RolePermissions struct {
	Read   bool `gorm:"column:read" json:"read"`
	Write  bool `gorm:"column:write" json:"write"`
	Delete bool `gorm:"column:delete" json:"delete"`
}

type Role struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	RoleName    string          `gorm:"column:rolename;uniqueIndex;not null" json:"rolename"` // 角色名，全局唯一，创建后不可修改
	Permissions RolePermissions `gorm:"embedded;embeddedPrefix:perm_" json:"permissions"`     // 读、写、删除三项独立权限
}
