package attendance

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/Jaspa-lSingh/Shiftwise/foundation/web"
	"github.com/Jaspa-lSingh/Shiftwise/internal/auth"
	"github.com/Jaspa-lSingh/Shiftwise/internal/entity"
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

// ClockIn opens an attendance record for the caller's shift. The shift must
// belong to the caller and the moment must fall inside the clock-in window.
func (r Repository) ClockIn(ctx context.Context, request ClockInRequest) (ClockInResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return ClockInResponse{}, err
	}

	if err := r.ValidateStruct(&request, "ShiftID"); err != nil {
		return ClockInResponse{}, err
	}

	query := fmt.Sprintf(`
		SELECT
			s.date,
			s.start_time,
			s.end_time,
			s.employee_id,
			s.status
		FROM shifts s
		WHERE s.deleted_at IS NULL AND s.id = %d
	`, *request.ShiftID)

	var shiftDate, shiftStatus string
	var startTimeBytes, endBytes []byte
	var shiftEmployeeID *int
	err = r.QueryRowContext(ctx, query).Scan(&shiftDate, &startTimeBytes, &endBytes, &shiftEmployeeID, &shiftStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return ClockInResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return ClockInResponse{}, web.NewRequestError(errors.Wrap(err, "selecting shift"), http.StatusInternalServerError)
	}

	if shiftEmployeeID == nil || *shiftEmployeeID != claims.UserId {
		return ClockInResponse{}, web.NewRequestError(errors.New("shift is not assigned to you"), http.StatusForbidden)
	}
	if shiftStatus == entity.ShiftCancelled {
		return ClockInResponse{}, web.NewRequestError(errors.New("shift is cancelled"), http.StatusBadRequest)
	}

	now := time.Now()
	if request.ClockInTime != nil {
		now = *request.ClockInTime
	}

	ok, err := shifttime.CanClockIn(shifttime.Shift{
		Date:      shiftDate,
		StartTime: string(startTimeBytes),
		EndTime:   string(endBytes),
	}, now)
	if err != nil {
		return ClockInResponse{}, web.NewRequestError(errors.Wrap(err, "checking clock-in window"), http.StatusBadRequest)
	}
	if !ok {
		return ClockInResponse{}, web.NewRequestError(errors.New("outside the clock-in window"), http.StatusBadRequest)
	}

	count, err := r.NewSelect().Model(&entity.Attendance{}).
		Where("shift_id = ? AND employee_id = ? AND deleted_at IS NULL", *request.ShiftID, claims.UserId).
		Count(ctx)
	if err != nil {
		return ClockInResponse{}, web.NewRequestError(errors.Wrap(err, "checking attendance"), http.StatusInternalServerError)
	}
	if count > 0 {
		return ClockInResponse{}, web.NewRequestError(errors.New("already clocked in for this shift"), http.StatusBadRequest)
	}

	response := ClockInResponse{
		ShiftID:         request.ShiftID,
		EmployeeID:      claims.UserId,
		ClockInTime:     &now,
		ClockInLocation: request.ClockInLocation,
		CreatedAt:       time.Now(),
		CreatedBy:       claims.UserId,
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return ClockInResponse{}, web.NewRequestError(errors.Wrap(err, "creating attendance"), http.StatusBadRequest)
	}

	return response, nil
}

// ClockOut closes the caller's open attendance record and stores the worked
// hours rounded to two decimals.
func (r Repository) ClockOut(ctx context.Context, request ClockOutRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	var record entity.Attendance
	err = r.NewSelect().Model(&record).Where("id = ? AND deleted_at IS NULL", request.ID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "selecting attendance"), http.StatusInternalServerError)
	}

	if record.EmployeeID == nil || *record.EmployeeID != claims.UserId {
		return web.NewRequestError(errors.New("attendance does not belong to you"), http.StatusForbidden)
	}
	if record.ClockOutTime != nil {
		return web.NewRequestError(errors.New("already clocked out"), http.StatusBadRequest)
	}
	if record.ClockInTime == nil {
		return web.NewRequestError(errors.New("attendance has no clock-in time"), http.StatusBadRequest)
	}

	now := time.Now()
	if request.ClockOutTime != nil {
		now = *request.ClockOutTime
	}
	if now.Before(*record.ClockInTime) {
		return web.NewRequestError(errors.New("clock-out before clock-in"), http.StatusBadRequest)
	}

	total := paycalc.Round2(now.Sub(*record.ClockInTime).Hours())

	q := r.NewUpdate().Table("attendance").Where("deleted_at IS NULL AND id = ?", request.ID)
	q.Set("clock_out_time = ?", now)
	if request.ClockOutLocation != nil {
		q.Set("clock_out_location = ?", *request.ClockOutLocation)
	}
	q.Set("total_hours = ?", total)
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating attendance"), http.StatusBadRequest)
	}

	return nil
}

// Active returns the caller's open attendance record, newest first.
func (r Repository) Active(ctx context.Context) (GetListResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return GetListResponse{}, err
	}

	whereQuery := fmt.Sprintf(`
		WHERE
			a.deleted_at IS NULL AND
			a.employee_id = %d AND
			a.clock_out_time IS NULL
	`, claims.UserId)

	list, err := r.selectList(ctx, whereQuery, "ORDER BY a.clock_in_time desc", " LIMIT 1", "")
	if err != nil {
		return GetListResponse{}, err
	}
	if len(list) == 0 {
		return GetListResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	return list[0], nil
}

func (r Repository) GetAll(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `
		WHERE
			a.deleted_at IS NULL
	`

	if filter.Date != nil {
		if _, err := shifttime.ParseDate(*filter.Date); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "parsing date filter"), http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(` AND s.date = '%s'`, *filter.Date)
	}
	if filter.EmployeeID != nil {
		whereQuery += fmt.Sprintf(` AND a.employee_id = %d`, *filter.EmployeeID)
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

	list, err := r.selectList(ctx, whereQuery, "ORDER BY a.clock_in_time desc", limitQuery, offsetQuery)
	if err != nil {
		return nil, 0, err
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(a.id)
		FROM attendance a
		LEFT JOIN shifts s ON s.id = a.shift_id
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting attendance"), http.StatusInternalServerError)
	}

	return list, count, nil
}

// GetByUser returns one employee's attendance history. Admins may read any
// employee, employees only their own.
func (r Repository) GetByUser(ctx context.Context, userID int) ([]GetListResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}
	if claims.Role != auth.RoleAdmin && claims.UserId != userID {
		return nil, web.NewRequestError(errors.New("forbidden"), http.StatusForbidden)
	}

	whereQuery := fmt.Sprintf(`
		WHERE
			a.deleted_at IS NULL AND
			a.employee_id = %d
	`, userID)

	return r.selectList(ctx, whereQuery, "ORDER BY a.clock_in_time desc", "", "")
}

// WorkedHours sums completed attendance hours for an employee over a closed
// shift-date range.
func (r Repository) WorkedHours(ctx context.Context, employeeID int, startDate, endDate string) (float64, error) {
	query := fmt.Sprintf(`
		SELECT
			coalesce(sum(a.total_hours), 0)
		FROM attendance a
		LEFT JOIN shifts s ON s.id = a.shift_id
		WHERE
			a.deleted_at IS NULL AND
			a.employee_id = %d AND
			a.total_hours IS NOT NULL AND
			s.date BETWEEN '%s' AND '%s'
	`, employeeID, startDate, endDate)

	var total float64
	if err := r.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, web.NewRequestError(errors.Wrap(err, "summing worked hours"), http.StatusInternalServerError)
	}

	return total, nil
}

func (r Repository) selectList(ctx context.Context, whereQuery, orderQuery, limitQuery, offsetQuery string) ([]GetListResponse, error) {
	query := fmt.Sprintf(`
		SELECT
			a.id,
			a.shift_id,
			s.date,
			a.employee_id,
			u.email,
			u.name,
			a.clock_in_time,
			a.clock_in_location,
			a.clock_out_time,
			a.clock_out_location,
			a.total_hours
		FROM attendance a
		LEFT JOIN shifts s ON s.id = a.shift_id
		LEFT JOIN users u ON u.id = a.employee_id
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting attendance"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.ShiftID,
			&detail.ShiftDate,
			&detail.EmployeeID,
			&detail.EmployeeEmail,
			&detail.EmployeeName,
			&detail.ClockInTime,
			&detail.ClockInLocation,
			&detail.ClockOutTime,
			&detail.ClockOutLocation,
			&detail.TotalHours,
		); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning attendance list"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "reading attendance list"), http.StatusInternalServerError)
	}

	return list, nil
}
