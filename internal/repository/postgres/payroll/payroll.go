package payroll

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/Jaspa-lSingh/Shiftwise/foundation/web"
	"github.com/Jaspa-lSingh/Shiftwise/internal/auth"
	"github.com/Jaspa-lSingh/Shiftwise/internal/pkg/repository/postgresql"
	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres"
	"github.com/Jaspa-lSingh/Shiftwise/internal/service/paycalc"
	"github.com/Jaspa-lSingh/Shiftwise/internal/service/shifttime"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// Employees lists every employee holding a payable role, with the hours
// recorded between the given dates. Both dates are inclusive.
func (r Repository) Employees(ctx context.Context, startDate, endDate string) ([]EmployeeResponse, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return nil, err
	}

	if err := validateRange(startDate, endDate); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT
			u.id,
			u.email,
			u.name,
			r.name,
			r.pay_per_hour,
			coalesce((
				SELECT sum(a.total_hours)
				FROM attendance a
				LEFT JOIN shifts s ON s.id = a.shift_id
				WHERE a.deleted_at IS NULL
					AND a.employee_id = u.id
					AND a.total_hours IS NOT NULL
					AND s.date BETWEEN '%s' AND '%s'
			), 0) AS worked_hours
		FROM users u
		JOIN user_role_assignments ura ON ura.user_id = u.id AND ura.deleted_at IS NULL
		JOIN roles r ON r.id = ura.role_id AND r.deleted_at IS NULL
		WHERE u.deleted_at IS NULL AND u.role = '%s'
		ORDER BY u.name asc
	`, startDate, endDate, auth.RoleEmployee)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting payroll employees"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []EmployeeResponse

	for rows.Next() {
		var detail EmployeeResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Email,
			&detail.Name,
			&detail.RoleName,
			&detail.PayPerHour,
			&detail.WorkedHours,
		); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning payroll employees"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "reading payroll employees"), http.StatusInternalServerError)
	}

	return list, nil
}

// Process runs payroll over a date range: one run row plus one detail row
// per employee with a payable role. The weekly base salary is the role's
// hourly rate over a standard week; overtime past it is paid at the
// overtime multiplier.
func (r Repository) Process(ctx context.Context, request ProcessRequest) (ProcessResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return ProcessResponse{}, err
	}

	if err := r.ValidateStruct(&request, "StartDate", "EndDate"); err != nil {
		return ProcessResponse{}, err
	}
	if err := validateRange(*request.StartDate, *request.EndDate); err != nil {
		return ProcessResponse{}, err
	}

	employees, err := r.Employees(ctx, *request.StartDate, *request.EndDate)
	if err != nil {
		return ProcessResponse{}, err
	}
	if len(employees) == 0 {
		return ProcessResponse{}, web.NewRequestError(errors.New("no employees with payable roles"), http.StatusBadRequest)
	}

	response := ProcessResponse{
		Run: RunResponse{
			StartDate: request.StartDate,
			EndDate:   request.EndDate,
			CreatedBy: claims.UserId,
		},
	}

	err = r.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(&response.Run).Returning("id").Exec(ctx, &response.Run.ID); err != nil {
			return errors.Wrap(err, "creating payroll run")
		}

		for _, e := range employees {
			rate := 0.0
			if e.PayPerHour != nil {
				rate = *e.PayPerHour
			}
			weeklyBase := paycalc.Round2(rate * paycalc.StandardWeekHours)
			pay := paycalc.Salary(weeklyBase, e.WorkedHours)

			detail := DetailRow{
				PayrollRunID: response.Run.ID,
				EmployeeID:   e.ID,
				WorkedHours:  paycalc.Round2(e.WorkedHours),
				BaseSalary:   pay.BaseSalary,
				OvertimePay:  pay.OvertimePay,
				Deductions:   pay.Deductions,
				NetSalary:    pay.NetSalary,
				CreatedBy:    claims.UserId,
			}

			if _, err := tx.NewInsert().Model(&detail).Returning("id").Exec(ctx, &detail.ID); err != nil {
				return errors.Wrap(err, "creating payroll detail")
			}

			response.Details = append(response.Details, detail)
		}

		return nil
	})
	if err != nil {
		return ProcessResponse{}, web.NewRequestError(err, http.StatusBadRequest)
	}

	return response, nil
}

// History returns processed payroll rows, newest run first. Admins see all
// rows, employees only their own.
func (r Repository) History(ctx context.Context, filter Filter) ([]HistoryResponse, int, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `
		WHERE
			pd.deleted_at IS NULL
	`
	if claims.Role != auth.RoleAdmin {
		whereQuery += fmt.Sprintf(` AND pd.employee_id = %d`, claims.UserId)
	}

	var limitQuery, offsetQuery string

	if filter.Page != nil && filter.Limit != nil {
		offset := (*filter.Page - 1) * (*filter.Limit)
		filter.Offset = &offset
	}
	if filter.Limit != nil {
		limitQuery = fmt.Sprintf(" LIMIT %d", *filter.Limit)
	}
	if filter.Offset != nil {
		offsetQuery = fmt.Sprintf(" OFFSET %d", *filter.Offset)
	}

	query := fmt.Sprintf(`
		SELECT
			pd.id,
			pd.payroll_run_id,
			pr.start_date,
			pr.end_date,
			pd.employee_id,
			u.email,
			u.name,
			pd.worked_hours,
			pd.base_salary,
			pd.overtime_pay,
			pd.deductions,
			pd.net_salary
		FROM payroll_details pd
		LEFT JOIN payroll_runs pr ON pr.id = pd.payroll_run_id
		LEFT JOIN users u ON u.id = pd.employee_id
		%s
		ORDER BY pd.payroll_run_id desc, pd.id asc
		%s %s
	`, whereQuery, limitQuery, offsetQuery)

	list, err := r.scanHistory(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(pd.id)
		FROM payroll_details pd
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting payroll details"), http.StatusInternalServerError)
	}

	return list, count, nil
}

// PayslipData returns one payroll detail row for rendering a payslip.
// Admins can fetch any row, employees only their own.
func (r Repository) PayslipData(ctx context.Context, detailID int) (HistoryResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return HistoryResponse{}, err
	}

	whereQuery := fmt.Sprintf(`
		WHERE
			pd.deleted_at IS NULL AND
			pd.id = %d
	`, detailID)
	if claims.Role != auth.RoleAdmin {
		whereQuery += fmt.Sprintf(` AND pd.employee_id = %d`, claims.UserId)
	}

	query := fmt.Sprintf(`
		SELECT
			pd.id,
			pd.payroll_run_id,
			pr.start_date,
			pr.end_date,
			pd.employee_id,
			u.email,
			u.name,
			pd.worked_hours,
			pd.base_salary,
			pd.overtime_pay,
			pd.deductions,
			pd.net_salary
		FROM payroll_details pd
		LEFT JOIN payroll_runs pr ON pr.id = pd.payroll_run_id
		LEFT JOIN users u ON u.id = pd.employee_id
		%s
	`, whereQuery)

	list, err := r.scanHistory(ctx, query)
	if err != nil {
		return HistoryResponse{}, err
	}
	if len(list) == 0 {
		return HistoryResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	return list[0], nil
}

func (r Repository) scanHistory(ctx context.Context, query string) ([]HistoryResponse, error) {
	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting payroll details"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []HistoryResponse

	for rows.Next() {
		var detail HistoryResponse
		var startString, endString string

		if err = rows.Scan(
			&detail.ID,
			&detail.PayrollRunID,
			&startString,
			&endString,
			&detail.EmployeeID,
			&detail.EmployeeEmail,
			&detail.EmployeeName,
			&detail.WorkedHours,
			&detail.BaseSalary,
			&detail.OvertimePay,
			&detail.Deductions,
			&detail.NetSalary,
		); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning payroll history"), http.StatusInternalServerError)
		}

		startDate, err := date.ParseDate(startString)
		if err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "converting date to date.Date"), http.StatusInternalServerError)
		}
		endDate, err := date.ParseDate(endString)
		if err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "converting date to date.Date"), http.StatusInternalServerError)
		}
		detail.StartDate = &startDate
		detail.EndDate = &endDate

		list = append(list, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "reading payroll history"), http.StatusInternalServerError)
	}

	return list, nil
}

func validateRange(startDate, endDate string) error {
	if _, err := shifttime.ParseDate(startDate); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}
	if _, err := shifttime.ParseDate(endDate); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}
	if startDate > endDate {
		return web.NewRequestError(errors.New("start_date is after end_date"), http.StatusBadRequest)
	}
	return nil
}
