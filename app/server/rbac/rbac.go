// Package rbac turns a role's permission flags into the permission names
// carried by users and login responses.
package rbac

import (
	"rbac-user-manager/app/server/constants"
	"rbac-user-manager/app/server/models"
)

const (
	PermRead   = "read"
	PermWrite  = "write"
	PermDelete = "delete"
)

// All lists every permission name in declaration order.
var All = []string{PermRead, PermWrite, PermDelete}

// Derive returns the enabled permissions of p, ordered as in All.
// The result is never nil so it encodes as an empty JSON array.
func Derive(p models.RolePermissions) []string {
	perms := make([]string, 0, len(All))
	if p.Read {
		perms = append(perms, PermRead)
	}
	if p.Write {
		perms = append(perms, PermWrite)
	}
	if p.Delete {
		perms = append(perms, PermDelete)
	}
	return perms
}

// Normalize drops unknown names and duplicates from names and returns the
// rest in declaration order.
func Normalize(names []string) []string {
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}

	perms := make([]string, 0, len(All))
	for _, p := range All {
		if seen[p] {
			perms = append(perms, p)
		}
	}
	return perms
}

// DefaultRoles are seeded at startup when missing.
func DefaultRoles() []models.Role {
	return []models.Role{
		{
			RoleName:    constants.RoleAdmin,
			Permissions: models.RolePermissions{Read: true, Write: true, Delete: true},
		},
		{
			RoleName:    constants.RoleUser,
			Permissions: models.RolePermissions{Read: true},
		},
	}
}
