package announcement

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
}

type GetListResponse struct {
	ID        int        `json:"id"`
	Topic     *string    `json:"topic"`
	Message   *string    `json:"message"`
	CreatedAt *time.Time `json:"created_at"`
	Broadcast bool       `json:"broadcast"`
}

type GetDetailByIdResponse struct {
	ID         int        `json:"id"`
	Topic      *string    `json:"topic"`
	Message    *string    `json:"message"`
	CreatedAt  *time.Time `json:"created_at"`
	Recipients []int      `json:"recipients"`
}

type CreateRequest struct {
	Topic      *string `json:"topic" form:"topic"`
	Message    *string `json:"message" form:"message"`
	Recipients []int   `json:"recipients" form:"recipients"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:announcements"`

	ID        int     `json:"id" bun:"id,pk,autoincrement"`
	Topic     *string `json:"topic" bun:"topic"`
	Message   *string `json:"message" bun:"message"`
	CreatedBy int     `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID      int     `json:"id" form:"id"`
	Topic   *string `json:"topic" form:"topic"`
	Message *string `json:"message" form:"message"`
}
