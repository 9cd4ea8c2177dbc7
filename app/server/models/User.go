package models

import "time"

// 不使用 gorm.Model ：用户没有软删除，否则删除后的邮箱仍会占用唯一索引
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// 基础信息
	Name   string `gorm:"column:name;not null" json:"name"`                    // 显示名称
	Email  string `gorm:"column:email;uniqueIndex;not null" json:"email"`      // 邮箱，全局唯一，同时作为登录名
	Role   string `gorm:"column:role;not null;default:user" json:"role"`       // 角色名，按名称引用 Role ，删除角色时不级联
	Status string `gorm:"column:status;not null;default:Active" json:"status"` // Active 或 Inactive

	// 最后一次写入时角色权限的快照，角色后续修改不会同步到这里
	Permissions []string `gorm:"column:permissions;type:text;serializer:json" json:"permissions"`

	// 登录与授权认证相关
	Password string `gorm:"column:password;not null" json:"-"` // 密码哈希（ bcrypt 或 argon2id ），从不明文储存
}
