package role

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/Jaspa-lSingh/Shiftwise/foundation/web"
	"github.com/Jaspa-lSingh/Shiftwise/internal/auth"
	"github.com/Jaspa-lSingh/Shiftwise/internal/entity"
	"github.com/Jaspa-lSingh/Shiftwise/internal/pkg/repository/postgresql"
	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `
		WHERE
			r.deleted_at IS NULL
	`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND r.name ilike '%s'`, "%"+search+"%")
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
			r.id,
			r.name,
			r.pay_per_hour
		FROM roles r
		%s
		ORDER BY r.name asc
		%s %s
	`, whereQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting roles"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Name,
			&detail.PayPerHour,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning role list"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "reading role list"), http.StatusInternalServerError)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(r.id)
		FROM roles r
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting roles"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "Name", "PayPerHour"); err != nil {
		return CreateResponse{}, err
	}

	if *request.PayPerHour < 0 {
		return CreateResponse{}, web.NewRequestError(errors.New("pay_per_hour cannot be negative"), http.StatusBadRequest)
	}

	count, err := r.NewSelect().Model(&entity.Role{}).Where("name = ? AND deleted_at IS NULL", *request.Name).Count(ctx)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "checking role name"), http.StatusInternalServerError)
	}
	if count > 0 {
		return CreateResponse{}, web.NewRequestError(errors.New("role name already in use"), http.StatusBadRequest)
	}

	response := CreateResponse{
		Name:       request.Name,
		PayPerHour: request.PayPerHour,
		CreatedBy:  claims.UserId,
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating role"), http.StatusBadRequest)
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

	if request.PayPerHour != nil && *request.PayPerHour < 0 {
		return web.NewRequestError(errors.New("pay_per_hour cannot be negative"), http.StatusBadRequest)
	}

	q := r.NewUpdate().Table("roles").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.Name != nil {
		q.Set("name = ?", *request.Name)
	}
	if request.PayPerHour != nil {
		q.Set("pay_per_hour = ?", *request.PayPerHour)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating role"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin); err != nil {
		return err
	}
	return r.DeleteRow(ctx, "roles", id)
}

// Assign gives a user a payable role. A user holds at most one assignment;
// assigning again replaces the old one.
func (r Repository) Assign(ctx context.Context, request AssignRequest) (AssignResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return AssignResponse{}, err
	}

	if err := r.ValidateStruct(&request, "UserID", "RoleID"); err != nil {
		return AssignResponse{}, err
	}

	count, err := r.NewSelect().Model(&entity.Role{}).Where("id = ? AND deleted_at IS NULL", *request.RoleID).Count(ctx)
	if err != nil {
		return AssignResponse{}, web.NewRequestError(errors.Wrap(err, "checking role"), http.StatusInternalServerError)
	}
	if count == 0 {
		return AssignResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	now := time.Now()
	if _, err := r.NewUpdate().Table("user_role_assignments").
		Set("deleted_at = ?", now).
		Set("deleted_by = ?", claims.UserId).
		Where("deleted_at IS NULL AND user_id = ?", *request.UserID).
		Exec(ctx); err != nil {
		return AssignResponse{}, web.NewRequestError(errors.Wrap(err, "retiring old assignment"), http.StatusInternalServerError)
	}

	response := AssignResponse{
		UserID:    request.UserID,
		RoleID:    request.RoleID,
		CreatedBy: claims.UserId,
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return AssignResponse{}, web.NewRequestError(errors.Wrap(err, "creating assignment"), http.StatusBadRequest)
	}

	return response, nil
}

// Assignments lists every active user-role assignment with its hourly rate.
func (r Repository) Assignments(ctx context.Context) ([]AssignmentListResponse, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT
			ura.id,
			ura.user_id,
			u.name,
			u.email,
			ura.role_id,
			r.name,
			r.pay_per_hour
		FROM user_role_assignments ura
		LEFT JOIN users u ON u.id = ura.user_id
		LEFT JOIN roles r ON r.id = ura.role_id
		WHERE ura.deleted_at IS NULL
		ORDER BY u.name asc
	`

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting assignments"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []AssignmentListResponse

	for rows.Next() {
		var detail AssignmentListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.UserID,
			&detail.UserName,
			&detail.UserEmail,
			&detail.RoleID,
			&detail.RoleName,
			&detail.PayPerHour,
		); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning assignment list"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "reading assignment list"), http.StatusInternalServerError)
	}

	return list, nil
}

// RateForUser returns the hourly rate of the user's active role assignment,
// or ErrNotFound when the user has none.
func (r Repository) RateForUser(ctx context.Context, userID int) (float64, error) {
	query := fmt.Sprintf(`
		SELECT
			r.pay_per_hour
		FROM user_role_assignments ura
		JOIN roles r ON r.id = ura.role_id AND r.deleted_at IS NULL
		WHERE ura.deleted_at IS NULL AND ura.user_id = %d
	`, userID)

	var rate *float64
	err := r.QueryRowContext(ctx, query).Scan(&rate)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return 0, web.NewRequestError(errors.Wrap(err, "selecting rate"), http.StatusInternalServerError)
	}
	if rate == nil {
		return 0, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	return *rate, nil
}
