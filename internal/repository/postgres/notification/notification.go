package notification

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/Jaspa-lSingh/Shiftwise/foundation/web"
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

// MyList returns the caller's notifications, newest first.
func (r Repository) MyList(ctx context.Context) ([]GetListResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT
			n.id,
			n.notification_type,
			n.message,
			n.is_read
		FROM notifications n
		WHERE
			n.deleted_at IS NULL AND
			n.recipient_id = %d
		ORDER BY n.created_at desc
	`, claims.UserId)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting notifications"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Type,
			&detail.Message,
			&detail.IsRead,
		); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning notification list"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "reading notification list"), http.StatusInternalServerError)
	}

	return list, nil
}

// MarkRead flags one of the caller's notifications as read.
func (r Repository) MarkRead(ctx context.Context, id int) error {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	var detail entity.Notification
	err = r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "selecting notification"), http.StatusInternalServerError)
	}

	if detail.RecipientID == nil || *detail.RecipientID != claims.UserId {
		return web.NewRequestError(errors.New("notification does not belong to you"), http.StatusForbidden)
	}

	q := r.NewUpdate().Table("notifications").Where("deleted_at IS NULL AND id = ?", id)
	q.Set("is_read = ?", true)
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	if _, err = q.Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating notification"), http.StatusBadRequest)
	}

	return nil
}
