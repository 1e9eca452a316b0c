package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Attendance is the clock-in/clock-out pair tied to exactly one shift. The
// clock-out columns stay null until the employee clocks out; total_hours is
// computed server-side at clock-out.
type Attendance struct {
	bun.BaseModel `bun:"table:attendance"`

	BasicEntity
	ShiftID          *int       `json:"shift" bun:"shift_id"`
	EmployeeID       *int       `json:"employee" bun:"employee_id"`
	ClockInTime      *time.Time `json:"clock_in_time" bun:"clock_in_time"`
	ClockInLocation  *string    `json:"clock_in_location" bun:"clock_in_location"`
	ClockOutTime     *time.Time `json:"clock_out_time" bun:"clock_out_time"`
	ClockOutLocation *string    `json:"clock_out_location" bun:"clock_out_location"`
	TotalHours       *float64   `json:"total_hours" bun:"total_hours"`
}
