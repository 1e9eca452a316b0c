package announcement

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

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

// Create writes the announcement and its recipient rows in one transaction.
// No recipients means broadcast.
func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "Topic", "Message"); err != nil {
		return CreateResponse{}, err
	}

	response := CreateResponse{
		Topic:     request.Topic,
		Message:   request.Message,
		CreatedBy: claims.UserId,
	}

	err = r.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID); err != nil {
			return errors.Wrap(err, "creating announcement")
		}

		for _, userID := range request.Recipients {
			recipient := entity.AnnouncementRecipient{
				AnnouncementID: response.ID,
				UserID:         userID,
			}
			if _, err := tx.NewInsert().Model(&recipient).Exec(ctx); err != nil {
				return errors.Wrap(err, "creating announcement recipient")
			}
		}

		return nil
	})
	if err != nil {
		return CreateResponse{}, web.NewRequestError(err, http.StatusBadRequest)
	}

	return response, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `
		WHERE
			a.deleted_at IS NULL
	`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND (a.topic ilike '%s' OR a.message ilike '%s')`, "%"+search+"%", "%"+search+"%")
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
			a.id,
			a.topic,
			a.message,
			a.created_at,
			NOT EXISTS (
				SELECT 1 FROM announcement_recipients ar WHERE ar.announcement_id = a.id
			) AS broadcast
		FROM announcements a
		%s
		ORDER BY a.created_at desc
		%s %s
	`, whereQuery, limitQuery, offsetQuery)

	list, err := r.scanList(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(a.id)
		FROM announcements a
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting announcements"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) GetById(ctx context.Context, id int) (GetDetailByIdResponse, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return GetDetailByIdResponse{}, err
	}

	query := fmt.Sprintf(`
		SELECT
			a.id,
			a.topic,
			a.message,
			a.created_at
		FROM announcements a
		WHERE a.deleted_at IS NULL AND a.id = %d
	`, id)

	var detail GetDetailByIdResponse

	err = r.QueryRowContext(ctx, query).Scan(
		&detail.ID,
		&detail.Topic,
		&detail.Message,
		&detail.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting announcement"), http.StatusInternalServerError)
	}

	rows, err := r.QueryContext(ctx, fmt.Sprintf(`
		SELECT ar.user_id FROM announcement_recipients ar WHERE ar.announcement_id = %d
	`, id))
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting recipients"), http.StatusInternalServerError)
	}
	defer rows.Close()

	for rows.Next() {
		var userID int
		if err = rows.Scan(&userID); err != nil {
			return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "scanning recipients"), http.StatusInternalServerError)
		}
		detail.Recipients = append(detail.Recipients, userID)
	}

	if err = rows.Err(); err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "reading recipients"), http.StatusInternalServerError)
	}

	return detail, nil
}

// MyList returns broadcasts plus announcements addressed to the caller.
func (r Repository) MyList(ctx context.Context) ([]GetListResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT
			a.id,
			a.topic,
			a.message,
			a.created_at,
			NOT EXISTS (
				SELECT 1 FROM announcement_recipients ar WHERE ar.announcement_id = a.id
			) AS broadcast
		FROM announcements a
		WHERE a.deleted_at IS NULL AND (
			NOT EXISTS (SELECT 1 FROM announcement_recipients ar WHERE ar.announcement_id = a.id)
			OR EXISTS (SELECT 1 FROM announcement_recipients ar WHERE ar.announcement_id = a.id AND ar.user_id = %d)
		)
		ORDER BY a.created_at desc
	`, claims.UserId)

	return r.scanList(ctx, query)
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	q := r.NewUpdate().Table("announcements").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.Topic != nil {
		q.Set("topic = ?", *request.Topic)
	}
	if request.Message != nil {
		q.Set("message = ?", *request.Message)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating announcement"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin); err != nil {
		return err
	}
	return r.DeleteRow(ctx, "announcements", id)
}

func (r Repository) scanList(ctx context.Context, query string) ([]GetListResponse, error) {
	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting announcements"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Topic,
			&detail.Message,
			&detail.CreatedAt,
			&detail.Broadcast,
		); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning announcement list"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "reading announcement list"), http.StatusInternalServerError)
	}

	return list, nil
}
