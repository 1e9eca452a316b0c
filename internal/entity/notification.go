package entity

import (
	"github.com/uptrace/bun"
)

// Notification types mirror the events that produce in-app notifications.
const (
	NotificationShift        = "shift"
	NotificationLeave        = "leave"
	NotificationInquiry      = "inquiry"
	NotificationAnnouncement = "announcement"
)

// Notification is one row of a user's in-app notification list. Rows are
// written by the aggregate that triggers them and read back by the recipient.
type Notification struct {
	bun.BaseModel `bun:"table:notifications"`

	BasicEntity
	RecipientID *int    `json:"recipient" bun:"recipient_id"`
	Type        *string `json:"notification_type" bun:"notification_type"`
	Message     *string `json:"message" bun:"message"`
	IsRead      bool    `json:"is_read" bun:"is_read"`
}

// ValidNotificationType reports whether s names a known notification source.
func ValidNotificationType(s string) bool {
	switch s {
	case NotificationShift, NotificationLeave, NotificationInquiry, NotificationAnnouncement:
		return true
	}
	return false
}
