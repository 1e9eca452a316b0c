package shift

import (
	"github.com/Azure/go-autorest/autorest/date"
	"github.com/uptrace/bun"
)

type Filter struct {
	Limit      *int
	Offset     *int
	Page       *int
	Date       *string
	EmployeeID *int
	Status     *string
	Search     *string
}

type GetListResponse struct {
	ID            int        `json:"id"`
	Date          *date.Date `json:"date"`
	StartTime     *string    `json:"start_time"`
	EndTime       *string    `json:"end_time"`
	EmployeeID    *int       `json:"employee"`
	EmployeeEmail *string    `json:"employee_email"`
	EmployeeName  *string    `json:"employee_name"`
	Location      *string    `json:"location"`
	Status        *string    `json:"status"`
}

type CreateRequest struct {
	Date       *string `json:"date" form:"date"`
	StartTime  *string `json:"start_time" form:"start_time"`
	EndTime    *string `json:"end_time" form:"end_time"`
	EmployeeID *int    `json:"employee" form:"employee"`
	Location   *string `json:"location" form:"location"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:shifts"`

	ID         int     `json:"id" bun:"id,pk,autoincrement"`
	Date       *string `json:"date" bun:"date"`
	StartTime  *string `json:"start_time" bun:"start_time"`
	EndTime    *string `json:"end_time" bun:"end_time"`
	EmployeeID *int    `json:"employee" bun:"employee_id"`
	Location   *string `json:"location" bun:"location"`
	Status     string  `json:"status" bun:"status"`
	CreatedBy  int     `json:"-" bun:"created_by"`
}

// CreateWithUserRequest creates the employee on the fly when no user with
// the given email exists yet, then assigns the shift.
type CreateWithUserRequest struct {
	Email     *string `json:"email" form:"email"`
	Name      *string `json:"name" form:"name"`
	Password  *string `json:"password" form:"password"`
	Date      *string `json:"date" form:"date"`
	StartTime *string `json:"start_time" form:"start_time"`
	EndTime   *string `json:"end_time" form:"end_time"`
	Location  *string `json:"location" form:"location"`
}

type UpdateRequest struct {
	ID         int     `json:"id" form:"id"`
	Date       *string `json:"date" form:"date"`
	StartTime  *string `json:"start_time" form:"start_time"`
	EndTime    *string `json:"end_time" form:"end_time"`
	EmployeeID *int    `json:"employee" form:"employee"`
	Location   *string `json:"location" form:"location"`
	Status     *string `json:"status" form:"status"`
}

// UpdateStatusRequest is the single employee-facing mutation: move an own
// shift through the status state machine.
type UpdateStatusRequest struct {
	ID     int    `json:"id" form:"id"`
	Status string `json:"status" form:"status"`
}
