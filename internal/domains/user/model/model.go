package model

import (
	"time"

	"frontdesk/shared/constant"
	"frontdesk/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID          = "id"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldFullName    = "full_name"
	FieldRole        = "role"
	FieldIsActive    = "is_active"
	FieldLastLoginAt = "last_login_at"
)

// ValidRole reports whether the role belongs to the closed staff role set.
func ValidRole(role string) bool {
	switch role {
	case constant.RoleAdministrator, constant.RoleManager, constant.RoleReception, constant.RoleViewer:
		return true
	}

	return false
}

type User struct {
	ID          string     `db:"id"`
	Email       string     `db:"email"`
	Password    string     `db:"password"`
	FullName    string     `db:"full_name"`
	Role        string     `db:"role"`
	IsActive    bool       `db:"is_active"`
	LastLoginAt *time.Time `db:"last_login_at"`
	model.Metadata
}
