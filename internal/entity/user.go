package entity

import (
	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users"`

	BasicEntity
	Email        *string `json:"email" bun:"email"`
	Password     *string `json:"-" bun:"password"`
	Name         *string `json:"name" bun:"name"`
	Role         *string `json:"role" bun:"role"`
	Phone        *string `json:"phone" bun:"phone"`
	City         *string `json:"city" bun:"city"`
	Country      *string `json:"country" bun:"country"`
	ProfileImage *string `json:"profile_image" bun:"profile_image"`
}
