package entity

import (
	"github.com/uptrace/bun"
)

type Announcement struct {
	bun.BaseModel `bun:"table:announcements"`

	BasicEntity
	Topic   *string `json:"topic" bun:"topic"`
	Message *string `json:"message" bun:"message"`
}

// AnnouncementRecipient addresses an announcement to one user. An
// announcement without recipients is a broadcast.
type AnnouncementRecipient struct {
	bun.BaseModel `bun:"table:announcement_recipients"`

	ID             int `json:"id" bun:"id,pk,autoincrement"`
	AnnouncementID int `json:"announcement_id" bun:"announcement_id"`
	UserID         int `json:"user_id" bun:"user_id"`
}
