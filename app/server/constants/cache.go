package constants

import "time"

const (
	CacheKeyRoleInfo = "rbac:role:info:%s" // %s -> rolename
)

const (
	CacheExpireRoleInfo = 5 * time.Minute
)
