package payroll

import (
	"github.com/Azure/go-autorest/autorest/date"
	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
}

// EmployeeResponse is one row of the payroll screen: an employee, their
// payable role and the hours they have on the clock so far this week.
type EmployeeResponse struct {
	ID          int      `json:"id"`
	Email       *string  `json:"email"`
	Name        *string  `json:"name"`
	RoleName    *string  `json:"role_name"`
	PayPerHour  *float64 `json:"pay_per_hour"`
	WorkedHours float64  `json:"worked_hours"`
}

type ProcessRequest struct {
	StartDate *string `json:"start_date" form:"start_date"`
	EndDate   *string `json:"end_date" form:"end_date"`
}

type RunResponse struct {
	bun.BaseModel `bun:"table:payroll_runs"`

	ID        int     `json:"id" bun:"id,pk,autoincrement"`
	StartDate *string `json:"start_date" bun:"start_date"`
	EndDate   *string `json:"end_date" bun:"end_date"`
	CreatedBy int     `json:"-" bun:"created_by"`
}

type DetailRow struct {
	bun.BaseModel `bun:"table:payroll_details"`

	ID           int     `json:"id" bun:"id,pk,autoincrement"`
	PayrollRunID int     `json:"payroll_run" bun:"payroll_run_id"`
	EmployeeID   int     `json:"employee" bun:"employee_id"`
	WorkedHours  float64 `json:"worked_hours" bun:"worked_hours"`
	BaseSalary   float64 `json:"base_salary" bun:"base_salary"`
	OvertimePay  float64 `json:"overtime_pay" bun:"overtime_pay"`
	Deductions   float64 `json:"deductions" bun:"deductions"`
	NetSalary    float64 `json:"net_salary" bun:"net_salary"`
	CreatedBy    int     `json:"-" bun:"created_by"`
}

type ProcessResponse struct {
	Run     RunResponse `json:"run"`
	Details []DetailRow `json:"details"`
}

type HistoryResponse struct {
	ID            int        `json:"id"`
	PayrollRunID  *int       `json:"payroll_run"`
	StartDate     *date.Date `json:"start_date"`
	EndDate       *date.Date `json:"end_date"`
	EmployeeID    *int       `json:"employee"`
	EmployeeEmail *string    `json:"employee_email"`
	EmployeeName  *string    `json:"employee_name"`
	WorkedHours   *float64   `json:"worked_hours"`
	BaseSalary    *float64   `json:"base_salary"`
	OvertimePay   *float64   `json:"overtime_pay"`
	Deductions    *float64   `json:"deductions"`
	NetSalary     *float64   `json:"net_salary"`
}
