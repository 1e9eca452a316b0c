package shift

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"golang.org/x/crypto/bcrypt"

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

func (r Repository) GetById(ctx context.Context, id int) (entity.Shift, error) {
	var detail entity.Shift

	err := r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Shift{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.Shift{}, web.NewRequestError(errors.Wrap(err, "selecting shift"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `
		WHERE
			s.deleted_at IS NULL
	`

	if filter.Date != nil {
		parsed, err := time.Parse("2006-01-02", *filter.Date)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "date parse"), http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(" AND s.date = '%s'", parsed.Format("2006-01-02"))
	}
	if filter.EmployeeID != nil {
		whereQuery += fmt.Sprintf(" AND s.employee_id = %d", *filter.EmployeeID)
	}
	if filter.Status != nil {
		if !entity.ValidShiftStatus(*filter.Status) {
			return nil, 0, web.NewRequestError(errors.Errorf("unknown status %q", *filter.Status), http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(" AND s.status = '%s'", *filter.Status)
	}
	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND (s.location ilike '%s' OR u.email ilike '%s')`, "%"+search+"%", "%"+search+"%")
	}

	orderQuery := "ORDER BY s.date desc, s.start_time desc"

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
			s.id,
			s.date,
			s.start_time,
			s.end_time,
			s.employee_id,
			u.email,
			u.name,
			s.location,
			s.status
		FROM shifts s
		LEFT JOIN users u ON u.id = s.employee_id
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	list, err := r.scanShiftRows(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(s.id)
		FROM shifts s
		LEFT JOIN users u ON u.id = s.employee_id
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting shifts"), http.StatusInternalServerError)
	}

	return list, count, nil
}

// MyShifts returns every shift assigned to the calling employee, newest
// first. The SPA's classifier buckets these client-side; the dashboard
// endpoint below buckets them server-side.
func (r Repository) MyShifts(ctx context.Context) ([]GetListResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT
			s.id,
			s.date,
			s.start_time,
			s.end_time,
			s.employee_id,
			u.email,
			u.name,
			s.location,
			s.status
		FROM shifts s
		LEFT JOIN users u ON u.id = s.employee_id
		WHERE s.deleted_at IS NULL AND s.employee_id = %d
		ORDER BY s.date desc, s.start_time desc
	`, claims.UserId)

	return r.scanShiftRows(ctx, query)
}

// AvailableForSwap lists other employees' shifts dated today or later, the
// pool a swap request can name as its desired shift.
func (r Repository) AvailableForSwap(ctx context.Context) ([]GetListResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT
			s.id,
			s.date,
			s.start_time,
			s.end_time,
			s.employee_id,
			u.email,
			u.name,
			s.location,
			s.status
		FROM shifts s
		LEFT JOIN users u ON u.id = s.employee_id
		WHERE s.deleted_at IS NULL
			AND s.employee_id != %d
			AND s.date >= CURRENT_DATE
			AND s.status != '%s'
		ORDER BY s.date asc, s.start_time asc
	`, claims.UserId, entity.ShiftCancelled)

	return r.scanShiftRows(ctx, query)
}

func (r Repository) scanShiftRows(ctx context.Context, query string) ([]GetListResponse, error) {
	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting shifts"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		var dateString string
		var startTimeBytes, endTimeBytes []byte

		if err = rows.Scan(
			&detail.ID,
			&dateString,
			&startTimeBytes,
			&endTimeBytes,
			&detail.EmployeeID,
			&detail.EmployeeEmail,
			&detail.EmployeeName,
			&detail.Location,
			&detail.Status,
		); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning shift list"), http.StatusInternalServerError)
		}

		shiftDate, err := date.ParseDate(dateString)
		if err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "converting date to date.Date"), http.StatusInternalServerError)
		}
		detail.Date = &shiftDate

		start := string(startTimeBytes)
		end := string(endTimeBytes)
		detail.StartTime = &start
		detail.EndTime = &end

		list = append(list, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "reading shift list"), http.StatusInternalServerError)
	}

	return list, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "Date", "StartTime", "EndTime", "EmployeeID"); err != nil {
		return CreateResponse{}, err
	}

	if err := validateShiftTimes(*request.Date, *request.StartTime, *request.EndTime); err != nil {
		return CreateResponse{}, err
	}

	response := CreateResponse{
		Date:       request.Date,
		StartTime:  request.StartTime,
		EndTime:    request.EndTime,
		EmployeeID: request.EmployeeID,
		Location:   request.Location,
		Status:     entity.ShiftPending,
		CreatedBy:  claims.UserId,
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating shift"), http.StatusBadRequest)
	}

	if err := notifyShiftAssigned(ctx, r.DB, request.EmployeeID, *request.Date, claims.UserId); err != nil {
		return CreateResponse{}, web.NewRequestError(err, http.StatusInternalServerError)
	}

	return response, nil
}

// CreateWithUser creates the employee account when the email is unknown,
// then the shift, in one transaction.
func (r Repository) CreateWithUser(ctx context.Context, request CreateWithUserRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "Email", "Date", "StartTime", "EndTime"); err != nil {
		return CreateResponse{}, err
	}

	if err := validateShiftTimes(*request.Date, *request.StartTime, *request.EndTime); err != nil {
		return CreateResponse{}, err
	}

	var response CreateResponse

	err = r.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var employee entity.User
		err := tx.NewSelect().Model(&employee).Where("email = ? AND deleted_at IS NULL", *request.Email).Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			password := "changeme"
			if request.Password != nil {
				password = *request.Password
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return errors.Wrap(err, "hashing password")
			}
			hashed := string(hash)
			role := auth.RoleEmployee

			employee = entity.User{
				Email:    request.Email,
				Password: &hashed,
				Name:     request.Name,
				Role:     &role,
			}
			employee.CreatedBy = &claims.UserId
			employee.CreatedAt = time.Now()

			if _, err := tx.NewInsert().Model(&employee).Returning("id").Exec(ctx, &employee.ID); err != nil {
				return errors.Wrap(err, "creating employee")
			}
		} else if err != nil {
			return errors.Wrap(err, "selecting employee")
		}

		response = CreateResponse{
			Date:       request.Date,
			StartTime:  request.StartTime,
			EndTime:    request.EndTime,
			EmployeeID: &employee.ID,
			Location:   request.Location,
			Status:     entity.ShiftPending,
			CreatedBy:  claims.UserId,
		}

		if _, err := tx.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID); err != nil {
			return errors.Wrap(err, "creating shift")
		}

		if err := notifyShiftAssigned(ctx, tx, response.EmployeeID, *request.Date, claims.UserId); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating shift with user"), http.StatusBadRequest)
	}

	return response, nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	if request.Status != nil && !entity.ValidShiftStatus(*request.Status) {
		return web.NewRequestError(errors.Errorf("unknown status %q", *request.Status), http.StatusBadRequest)
	}

	q := r.NewUpdate().Table("shifts").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.Date != nil {
		q.Set("date = ?", *request.Date)
	}
	if request.StartTime != nil {
		q.Set("start_time = ?", *request.StartTime)
	}
	if request.EndTime != nil {
		q.Set("end_time = ?", *request.EndTime)
	}
	if request.EmployeeID != nil {
		q.Set("employee_id = ?", *request.EmployeeID)
	}
	if request.Location != nil {
		q.Set("location = ?", *request.Location)
	}
	if request.Status != nil {
		q.Set("status = ?", *request.Status)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating shift"), http.StatusBadRequest)
	}

	return nil
}

// UpdateMyStatus is the employee PATCH path. The transition is validated
// against the status state machine before anything is written; confirmed
// and cancelled shifts cannot be moved by the employee anymore.
func (r Repository) UpdateMyStatus(ctx context.Context, request UpdateStatusRequest) (entity.Shift, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return entity.Shift{}, err
	}

	if err := r.ValidateStruct(&request, "ID", "Status"); err != nil {
		return entity.Shift{}, err
	}

	if !entity.ValidShiftStatus(request.Status) {
		return entity.Shift{}, web.NewRequestError(errors.Errorf("unknown status %q", request.Status), http.StatusBadRequest)
	}

	detail, err := r.GetById(ctx, request.ID)
	if err != nil {
		return entity.Shift{}, err
	}

	if detail.EmployeeID == nil || *detail.EmployeeID != claims.UserId {
		return entity.Shift{}, web.NewRequestError(errors.New("shift is not assigned to you"), http.StatusForbidden)
	}

	current := entity.ShiftPending
	if detail.Status != nil {
		current = *detail.Status
	}

	if !entity.EmployeeCanSetShiftStatus(current, request.Status) {
		return entity.Shift{}, web.NewRequestError(
			errors.Errorf("cannot change status from %s to %s", current, request.Status), http.StatusBadRequest)
	}

	q := r.NewUpdate().Table("shifts").Where("deleted_at IS NULL AND id = ?", request.ID)
	q.Set("status = ?", request.Status)
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	if _, err = q.Exec(ctx); err != nil {
		return entity.Shift{}, web.NewRequestError(errors.Wrap(err, "updating shift status"), http.StatusBadRequest)
	}

	detail.Status = &request.Status

	return detail, nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin); err != nil {
		return err
	}
	return r.DeleteRow(ctx, "shifts", id)
}

// notifyShiftAssigned writes the in-app notification the employee sees when
// a shift lands on their schedule.
func notifyShiftAssigned(ctx context.Context, db bun.IDB, employeeID *int, date string, createdBy int) error {
	if employeeID == nil {
		return nil
	}

	notificationType := entity.NotificationShift
	message := fmt.Sprintf("A new shift has been created for you on %s.", date)

	notification := entity.Notification{
		RecipientID: employeeID,
		Type:        &notificationType,
		Message:     &message,
	}
	notification.CreatedAt = time.Now()
	notification.CreatedBy = &createdBy

	if _, err := db.NewInsert().Model(&notification).Exec(ctx); err != nil {
		return errors.Wrap(err, "creating shift notification")
	}

	return nil
}

func validateShiftTimes(dateValue, startTime, endTime string) error {
	if _, err := shifttime.ParseDate(dateValue); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}
	if _, err := shifttime.ParseClock(startTime); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}
	if _, err := shifttime.ParseClock(endTime); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}
	return nil
}
