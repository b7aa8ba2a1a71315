// Package auth decides which role a login grants. There is no credential
// check: the email alone picks the role.
package auth

import (
	"strings"

	"github.com/lehmann314159/nexuscrm/internal/models"
)

const (
	DefaultEmail    = "admin@nexus.io"
	DefaultPassword = "password"
)

// RoleForEmail grants ADMIN to any email containing "admin" and CLIENT
// to everything else.
func RoleForEmail(email string) models.UserRole {
	if strings.Contains(email, "admin") {
		return models.RoleAdmin
	}
	return models.RoleClient
}

// QuickRole maps a quick-login shortcut name to its fixed role.
func QuickRole(name string) (models.UserRole, bool) {
	switch name {
	case "admin":
		return models.RoleAdmin, true
	case "client":
		return models.RoleClient, true
	}
	return "", false
}
