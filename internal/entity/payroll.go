package entity

import (
	"github.com/uptrace/bun"
)

type PayrollRun struct {
	bun.BaseModel `bun:"table:payroll_runs"`

	BasicEntity
	StartDate *string `json:"start_date" bun:"start_date"`
	EndDate   *string `json:"end_date" bun:"end_date"`
}

type PayrollDetail struct {
	bun.BaseModel `bun:"table:payroll_details"`

	BasicEntity
	PayrollRunID *int     `json:"payroll_run" bun:"payroll_run_id"`
	EmployeeID   *int     `json:"employee" bun:"employee_id"`
	WorkedHours  *float64 `json:"worked_hours" bun:"worked_hours"`
	BaseSalary   *float64 `json:"base_salary" bun:"base_salary"`
	OvertimePay  *float64 `json:"overtime_pay" bun:"overtime_pay"`
	Deductions   *float64 `json:"deductions" bun:"deductions"`
	NetSalary    *float64 `json:"net_salary" bun:"net_salary"`
}
