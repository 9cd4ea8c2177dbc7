package constants

import "time"

// 会话令牌固定一小时有效，服务端不保存、不吊销
const AuthTokenDuration = 1 * time.Hour

// 默认角色
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// 用户状态
const (
	UserStatusActive   = "Active"
	UserStatusInactive = "Inactive"
)

// echo context 中存放已验证令牌的键
const ContextKeyJwtUser = "jwtUser"
