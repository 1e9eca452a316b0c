package inquiry

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
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

// Create files a question for the admins on behalf of the caller.
func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "Subject", "Message"); err != nil {
		return CreateResponse{}, err
	}

	response := CreateResponse{
		EmployeeID: claims.UserId,
		Subject:    request.Subject,
		Message:    request.Message,
		Status:     entity.InquiryPending,
		CreatedBy:  claims.UserId,
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating inquiry"), http.StatusBadRequest)
	}

	return response, nil
}

// MyList returns the caller's own inquiries, newest first.
func (r Repository) MyList(ctx context.Context) ([]GetListResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	whereQuery := fmt.Sprintf(`
		WHERE
			i.deleted_at IS NULL AND
			i.employee_id = %d
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
			i.deleted_at IS NULL
	`

	if filter.Status != nil {
		if !entity.ValidInquiryStatus(*filter.Status) {
			return nil, 0, web.NewRequestError(errors.Errorf("unknown status %q", *filter.Status), http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(` AND i.status = '%s'`, *filter.Status)
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
			count(i.id)
		FROM employee_inquiries i
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting inquiries"), http.StatusInternalServerError)
	}

	return list, count, nil
}

// Answer stores the admin reply and flips the inquiry to answered. The
// employee gets an in-app notification about it.
func (r Repository) Answer(ctx context.Context, request AnswerRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID", "Answer"); err != nil {
		return err
	}

	var detail entity.Inquiry
	err = r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", request.ID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "selecting inquiry"), http.StatusInternalServerError)
	}

	err = r.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		q := tx.NewUpdate().Table("employee_inquiries").Where("deleted_at IS NULL AND id = ?", request.ID)
		q.Set("answer = ?", *request.Answer)
		q.Set("status = ?", entity.InquiryAnswered)
		q.Set("updated_at = ?", time.Now())
		q.Set("updated_by = ?", claims.UserId)
		if _, err := q.Exec(ctx); err != nil {
			return errors.Wrap(err, "updating inquiry")
		}

		if detail.EmployeeID != nil {
			notificationType := entity.NotificationInquiry
			message := "Your inquiry has been answered."
			if detail.Subject != nil {
				message = fmt.Sprintf("Your inquiry %q has been answered.", *detail.Subject)
			}
			notification := entity.Notification{
				RecipientID: detail.EmployeeID,
				Type:        &notificationType,
				Message:     &message,
			}
			notification.CreatedAt = time.Now()
			notification.CreatedBy = &claims.UserId
			if _, err := tx.NewInsert().Model(&notification).Exec(ctx); err != nil {
				return errors.Wrap(err, "creating notification")
			}
		}

		return nil
	})
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin); err != nil {
		return err
	}
	return r.DeleteRow(ctx, "employee_inquiries", id)
}

func (r Repository) selectList(ctx context.Context, whereQuery, limitQuery, offsetQuery string) ([]GetListResponse, error) {
	query := fmt.Sprintf(`
		SELECT
			i.id,
			i.employee_id,
			u.email,
			u.name,
			i.subject,
			i.message,
			i.answer,
			i.status
		FROM employee_inquiries i
		LEFT JOIN users u ON u.id = i.employee_id
		%s
		ORDER BY i.created_at desc
		%s %s
	`, whereQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting inquiries"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse

		if err = rows.Scan(
			&detail.ID,
			&detail.EmployeeID,
			&detail.EmployeeEmail,
			&detail.EmployeeName,
			&detail.Subject,
			&detail.Message,
			&detail.Answer,
			&detail.Status,
		); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning inquiry list"), http.StatusInternalServerError)
		}

		list = append(list, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "reading inquiry list"), http.StatusInternalServerError)
	}

	return list, nil
}
