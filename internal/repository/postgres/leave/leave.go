package leave

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"

	"github.com/Jaspa-lSingh/Shiftwise/foundation/web"
	"github.com/Jaspa-lSingh/Shiftwise/internal/auth"
	"github.com/Jaspa-lSingh/Shiftwise/internal/entity"
	"github.com/Jaspa-lSingh/Shiftwise/internal/pkg/repository/postgresql"
	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres"
	"github.com/Jaspa-lSingh/Shiftwise/internal/service/shifttime"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// Create files a leave request for one of the predefined shift slots. An
// employee can hold at most one request per date and slot.
func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "ShiftDate", "ShiftTime", "Reason"); err != nil {
		return CreateResponse{}, err
	}

	if _, err := shifttime.ParseDate(*request.ShiftDate); err != nil {
		return CreateResponse{}, web.NewRequestError(err, http.StatusBadRequest)
	}
	if !entity.ValidLeaveShiftTime(*request.ShiftTime) {
		return CreateResponse{}, web.NewRequestError(errors.Errorf("unknown shift slot %q", *request.ShiftTime), http.StatusBadRequest)
	}

	count, err := r.NewSelect().Model(&entity.LeaveRequest{}).
		Where("employee_id = ? AND shift_date = ? AND shift_time = ? AND deleted_at IS NULL",
			claims.UserId, *request.ShiftDate, *request.ShiftTime).
		Count(ctx)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "checking leave requests"), http.StatusInternalServerError)
	}
	if count > 0 {
		return CreateResponse{}, web.NewRequestError(errors.New("a leave request for this date and slot already exists"), http.StatusBadRequest)
	}

	response := CreateResponse{
		EmployeeID: claims.UserId,
		ShiftDate:  request.ShiftDate,
		ShiftTime:  request.ShiftTime,
		Location:   request.Location,
		Reason:     request.Reason,
		Status:     entity.LeavePending,
		CreatedBy:  claims.UserId,
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating leave request"), http.StatusBadRequest)
	}

	return response, nil
}

// MyList returns the caller's own leave requests, newest date first.
func (r Repository) MyList(ctx context.Context) ([]GetListResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	whereQuery := fmt.Sprintf(`
		WHERE
			l.deleted_at IS NULL AND
			l.employee_id = %d
	`, claims.UserId)

	return r.selectList(ctx, whereQuery, "", "")
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `
		WHERE
			l.deleted_at IS NULL
	`

	if filter.Status != nil {
		if !validLeaveStatus(*filter.Status) {
			return nil, 0, web.NewRequestError(errors.Errorf("unknown status %q", *filter.Status), http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(` AND l.status = '%s'`, *filter.Status)
	}
	if filter.Date != nil {
		if _, err := shifttime.ParseDate(*filter.Date); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "parsing date filter"), http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(` AND l.shift_date = '%s'`, *filter.Date)
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

	list, err := r.selectList(ctx, whereQuery, limitQuery, offsetQuery)
	if err != nil {
		return nil, 0, err
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(l.id)
		FROM leave_requests l
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting leave requests"), http.StatusInternalServerError)
	}

	return list, count, nil
}

// UpdateStatus approves or denies a pending leave request.
func (r Repository) UpdateStatus(ctx context.Context, request UpdateStatusRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID", "Status"); err != nil {
		return err
	}

	if request.Status != entity.LeaveApproved && request.Status != entity.LeaveDenied {
		return web.NewRequestError(errors.Errorf("unknown status %q", request.Status), http.StatusBadRequest)
	}

	var detail entity.LeaveRequest
	err = r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", request.ID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "selecting leave request"), http.StatusInternalServerError)
	}

	if detail.Status == nil || *detail.Status != entity.LeavePending {
		return web.NewRequestError(errors.New("leave request is not pending"), http.StatusBadRequest)
	}

	q := r.NewUpdate().Table("leave_requests").Where("deleted_at IS NULL AND id = ?", request.ID)
	q.Set("status = ?", request.Status)
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	if _, err = q.Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating leave request"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	if claims.Role != auth.RoleAdmin {
		var detail entity.LeaveRequest
		err = r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
		}
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "selecting leave request"), http.StatusInternalServerError)
		}
		if detail.EmployeeID == nil || *detail.EmployeeID != claims.UserId {
			return web.NewRequestError(errors.New("leave request does not belong to you"), http.StatusForbidden)
		}
		if detail.Status != nil && *detail.Status != entity.LeavePending {
			return web.NewRequestError(errors.New("only pending requests can be withdrawn"), http.StatusBadRequest)
		}
	}

	return r.DeleteRow(ctx, "leave_requests", id)
}

func (r Repository) selectList(ctx context.Context, whereQuery, limitQuery, offsetQuery string) ([]GetListResponse, error) {
	query := fmt.Sprintf(`
		SELECT
			l.id,
			l.employee_id,
			u.email,
			u.name,
			l.shift_date,
			l.shift_time,
			l.location,
			l.reason,
			l.status
		FROM leave_requests l
		LEFT JOIN users u ON u.id = l.employee_id
		%s
		ORDER BY l.shift_date desc
		%s %s
	`, whereQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting leave requests"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		var dateString string

		if err = rows.Scan(
			&detail.ID,
			&detail.EmployeeID,
			&detail.EmployeeEmail,
			&detail.EmployeeName,
			&dateString,
			&detail.ShiftTime,
			&detail.Location,
			&detail.Reason,
			&detail.Status,
		); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning leave list"), http.StatusInternalServerError)
		}

		shiftDate, err := date.ParseDate(dateString)
		if err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "converting date to date.Date"), http.StatusInternalServerError)
		}
		detail.ShiftDate = &shiftDate

		list = append(list, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "reading leave list"), http.StatusInternalServerError)
	}

	return list, nil
}

func validLeaveStatus(s string) bool {
	switch s {
	case entity.LeavePending, entity.LeaveApproved, entity.LeaveDenied:
		return true
	}
	return false
}
