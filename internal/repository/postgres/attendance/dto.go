package attendance

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/uptrace/bun"
)

type Filter struct {
	Limit      *int
	Offset     *int
	Page       *int
	Date       *string
	EmployeeID *int
}

type ClockInRequest struct {
	ShiftID         *int       `json:"shift" form:"shift"`
	ClockInTime     *time.Time `json:"clock_in_time" form:"clock_in_time"`
	ClockInLocation *string    `json:"clock_in_location" form:"clock_in_location"`
}

type ClockInResponse struct {
	bun.BaseModel `bun:"table:attendance"`

	ID              int        `json:"id" bun:"id,pk,autoincrement"`
	ShiftID         *int       `json:"shift" bun:"shift_id"`
	EmployeeID      int        `json:"employee" bun:"employee_id"`
	ClockInTime     *time.Time `json:"clock_in_time" bun:"clock_in_time"`
	ClockInLocation *string    `json:"clock_in_location" bun:"clock_in_location"`
	CreatedAt       time.Time  `json:"-" bun:"created_at"`
	CreatedBy       int        `json:"-" bun:"created_by"`
}

type ClockOutRequest struct {
	ID               int        `json:"id" form:"id"`
	ClockOutTime     *time.Time `json:"clock_out_time" form:"clock_out_time"`
	ClockOutLocation *string    `json:"clock_out_location" form:"clock_out_location"`
}

type GetListResponse struct {
	ID               int        `json:"id"`
	ShiftID          *int       `json:"shift"`
	ShiftDate        *date.Date `json:"shift_date"`
	EmployeeID       *int       `json:"employee"`
	EmployeeEmail    *string    `json:"employee_email"`
	EmployeeName     *string    `json:"employee_name"`
	ClockInTime      *time.Time `json:"clock_in_time"`
	ClockInLocation  *string    `json:"clock_in_location"`
	ClockOutTime     *time.Time `json:"clock_out_time"`
	ClockOutLocation *string    `json:"clock_out_location"`
	TotalHours       *float64   `json:"total_hours"`
}
