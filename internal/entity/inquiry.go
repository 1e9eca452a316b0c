package entity

import (
	"github.com/uptrace/bun"
)

const (
	InquiryPending  = "pending"
	InquiryAnswered = "answered"
)

// Inquiry is an employee question for the admins. It stays pending until an
// admin writes an answer, which flips the status to answered.
type Inquiry struct {
	bun.BaseModel `bun:"table:employee_inquiries"`

	BasicEntity
	EmployeeID *int    `json:"employee" bun:"employee_id"`
	Subject    *string `json:"subject" bun:"subject"`
	Message    *string `json:"message" bun:"message"`
	Answer     *string `json:"answer" bun:"answer"`
	Status     *string `json:"status" bun:"status"`
}

// ValidInquiryStatus reports whether s is one of the two known statuses.
func ValidInquiryStatus(s string) bool {
	switch s {
	case InquiryPending, InquiryAnswered:
		return true
	}
	return false
}
