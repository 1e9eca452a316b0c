package user

import (
	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
	Role   *string
}

type SignInRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type RefreshTokenRequest struct {
	AccessToken  string `json:"access_token" form:"access_token"`
	RefreshToken string `json:"refresh_token" form:"refresh_token"`
}

type GetListResponse struct {
	ID      int     `json:"id"`
	Email   *string `json:"email"`
	Name    *string `json:"name"`
	Role    *string `json:"role"`
	Phone   *string `json:"phone"`
	City    *string `json:"city"`
	Country *string `json:"country"`
}

type GetDetailByIdResponse struct {
	ID           int     `json:"id"`
	Email        *string `json:"email"`
	Name         *string `json:"name"`
	Role         *string `json:"role"`
	Phone        *string `json:"phone"`
	City         *string `json:"city"`
	Country      *string `json:"country"`
	ProfileImage *string `json:"profile_image"`
}

type CreateRequest struct {
	Email    *string `json:"email" form:"email"`
	Password *string `json:"password" form:"password"`
	Name     *string `json:"name" form:"name"`
	Role     *string `json:"role" form:"role"`
	Phone    *string `json:"phone" form:"phone"`
	City     *string `json:"city" form:"city"`
	Country  *string `json:"country" form:"country"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:users"`

	ID        int     `json:"id" bun:"id,pk,autoincrement"`
	Email     *string `json:"email" bun:"email"`
	Password  *string `json:"-" bun:"password"`
	Name      *string `json:"name" bun:"name"`
	Role      *string `json:"role" bun:"role"`
	Phone     *string `json:"phone" bun:"phone"`
	City      *string `json:"city" bun:"city"`
	Country   *string `json:"country" bun:"country"`
	CreatedBy int     `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID           int     `json:"id" form:"id"`
	Email        *string `json:"email" form:"email"`
	Password     *string `json:"password" form:"password"`
	Name         *string `json:"name" form:"name"`
	Role         *string `json:"role" form:"role"`
	Phone        *string `json:"phone" form:"phone"`
	City         *string `json:"city" form:"city"`
	Country      *string `json:"country" form:"country"`
	ProfileImage *string `json:"-" form:"-"`
}
