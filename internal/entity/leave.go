package entity

import (
	"github.com/uptrace/bun"
)

const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveDenied   = "denied"
)

// Predefined shift slots a leave request can name.
const (
	LeaveShiftMorning   = "morning"
	LeaveShiftAfternoon = "afternoon"
	LeaveShiftNight     = "night"
)

type LeaveRequest struct {
	bun.BaseModel `bun:"table:leave_requests"`

	BasicEntity
	EmployeeID *int    `json:"employee" bun:"employee_id"`
	ShiftDate  *string `json:"shift_date" bun:"shift_date"`
	ShiftTime  *string `json:"shift_time" bun:"shift_time"`
	Location   *string `json:"location" bun:"location"`
	Reason     *string `json:"reason" bun:"reason"`
	Status     *string `json:"status" bun:"status"`
}

// ValidLeaveShiftTime reports whether s names one of the predefined slots.
func ValidLeaveShiftTime(s string) bool {
	switch s {
	case LeaveShiftMorning, LeaveShiftAfternoon, LeaveShiftNight:
		return true
	}
	return false
}
