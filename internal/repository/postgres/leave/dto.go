package leave

import (
	"github.com/Azure/go-autorest/autorest/date"
	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Status *string
	Date   *string
}

type GetListResponse struct {
	ID            int        `json:"id"`
	EmployeeID    *int       `json:"employee"`
	EmployeeEmail *string    `json:"employee_email"`
	EmployeeName  *string    `json:"employee_name"`
	ShiftDate     *date.Date `json:"shift_date"`
	ShiftTime     *string    `json:"shift_time"`
	Location      *string    `json:"location"`
	Reason        *string    `json:"reason"`
	Status        *string    `json:"status"`
}

type CreateRequest struct {
	ShiftDate *string `json:"shift_date" form:"shift_date"`
	ShiftTime *string `json:"shift_time" form:"shift_time"`
	Location  *string `json:"location" form:"location"`
	Reason    *string `json:"reason" form:"reason"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:leave_requests"`

	ID         int     `json:"id" bun:"id,pk,autoincrement"`
	EmployeeID int     `json:"employee" bun:"employee_id"`
	ShiftDate  *string `json:"shift_date" bun:"shift_date"`
	ShiftTime  *string `json:"shift_time" bun:"shift_time"`
	Location   *string `json:"location" bun:"location"`
	Reason     *string `json:"reason" bun:"reason"`
	Status     string  `json:"status" bun:"status"`
	CreatedBy  int     `json:"-" bun:"created_by"`
}

type UpdateStatusRequest struct {
	ID     int    `json:"id" form:"id"`
	Status string `json:"status" form:"status"`
}
