package payroll

import (
	"context"

	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/payroll"
)

type Payroll interface {
	Employees(ctx context.Context, startDate, endDate string) ([]payroll.EmployeeResponse, error)
	Process(ctx context.Context, request payroll.ProcessRequest) (payroll.ProcessResponse, error)
	History(ctx context.Context, filter payroll.Filter) ([]payroll.HistoryResponse, int, error)
	PayslipData(ctx context.Context, detailID int) (payroll.HistoryResponse, error)
}
