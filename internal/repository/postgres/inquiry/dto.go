package inquiry

import (
	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Status *string
}

type GetListResponse struct {
	ID            int     `json:"id"`
	EmployeeID    *int    `json:"employee"`
	EmployeeEmail *string `json:"employee_email"`
	EmployeeName  *string `json:"employee_name"`
	Subject       *string `json:"subject"`
	Message       *string `json:"message"`
	Answer        *string `json:"answer"`
	Status        *string `json:"status"`
}

type CreateRequest struct {
	Subject *string `json:"subject" form:"subject"`
	Message *string `json:"message" form:"message"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:employee_inquiries"`

	ID         int     `json:"id" bun:"id,pk,autoincrement"`
	EmployeeID int     `json:"employee" bun:"employee_id"`
	Subject    *string `json:"subject" bun:"subject"`
	Message    *string `json:"message" bun:"message"`
	Status     string  `json:"status" bun:"status"`
	CreatedBy  int     `json:"-" bun:"created_by"`
}

type AnswerRequest struct {
	ID     int     `json:"id" form:"id"`
	Answer *string `json:"answer" form:"answer"`
}
