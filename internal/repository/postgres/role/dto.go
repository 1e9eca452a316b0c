package role

import (
	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
}

type GetListResponse struct {
	ID         int      `json:"id"`
	Name       *string  `json:"name"`
	PayPerHour *float64 `json:"pay_per_hour"`
}

type CreateRequest struct {
	Name       *string  `json:"name" form:"name"`
	PayPerHour *float64 `json:"pay_per_hour" form:"pay_per_hour"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:roles"`

	ID         int      `json:"id" bun:"id,pk,autoincrement"`
	Name       *string  `json:"name" bun:"name"`
	PayPerHour *float64 `json:"pay_per_hour" bun:"pay_per_hour"`
	CreatedBy  int      `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID         int      `json:"id" form:"id"`
	Name       *string  `json:"name" form:"name"`
	PayPerHour *float64 `json:"pay_per_hour" form:"pay_per_hour"`
}

type AssignRequest struct {
	UserID *int `json:"user" form:"user"`
	RoleID *int `json:"role" form:"role"`
}

type AssignResponse struct {
	bun.BaseModel `bun:"table:user_role_assignments"`

	ID        int  `json:"id" bun:"id,pk,autoincrement"`
	UserID    *int `json:"user" bun:"user_id"`
	RoleID    *int `json:"role" bun:"role_id"`
	CreatedBy int  `json:"-" bun:"created_by"`
}

type AssignmentListResponse struct {
	ID         int      `json:"id"`
	UserID     *int     `json:"user"`
	UserName   *string  `json:"user_name"`
	UserEmail  *string  `json:"user_email"`
	RoleID     *int     `json:"role"`
	RoleName   *string  `json:"role_name"`
	PayPerHour *float64 `json:"pay_per_hour"`
}
