package entity

import (
	"github.com/uptrace/bun"
)

// Role is a payable job role, not an auth role.
type Role struct {
	bun.BaseModel `bun:"table:roles"`

	BasicEntity
	Name       *string  `json:"name" bun:"name"`
	PayPerHour *float64 `json:"pay_per_hour" bun:"pay_per_hour"`
}

type UserRoleAssignment struct {
	bun.BaseModel `bun:"table:user_role_assignments"`

	BasicEntity
	UserID *int `json:"user" bun:"user_id"`
	RoleID *int `json:"role" bun:"role_id"`
}
