package swap

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/Azure/go-autorest/autorest/date"
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

// Create files a swap request. The give-up shift must belong to the caller,
// the desired shift must belong to someone else.
func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "GiveUpShiftID", "DesiredShiftID"); err != nil {
		return CreateResponse{}, err
	}

	giveUpOwner, err := r.shiftOwner(ctx, *request.GiveUpShiftID)
	if err != nil {
		return CreateResponse{}, err
	}
	if giveUpOwner == nil || *giveUpOwner != claims.UserId {
		return CreateResponse{}, web.NewRequestError(errors.New("give-up shift is not assigned to you"), http.StatusForbidden)
	}

	desiredOwner, err := r.shiftOwner(ctx, *request.DesiredShiftID)
	if err != nil {
		return CreateResponse{}, err
	}
	if desiredOwner != nil && *desiredOwner == claims.UserId {
		return CreateResponse{}, web.NewRequestError(errors.New("desired shift is already yours"), http.StatusBadRequest)
	}

	count, err := r.NewSelect().Model(&entity.SwapRequest{}).
		Where("requested_by = ? AND give_up_shift_id = ? AND status = ? AND deleted_at IS NULL",
			claims.UserId, *request.GiveUpShiftID, entity.SwapPending).
		Count(ctx)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "checking swap requests"), http.StatusInternalServerError)
	}
	if count > 0 {
		return CreateResponse{}, web.NewRequestError(errors.New("a pending swap request for this shift already exists"), http.StatusBadRequest)
	}

	response := CreateResponse{
		RequestedBy:    claims.UserId,
		GiveUpShiftID:  request.GiveUpShiftID,
		DesiredShiftID: request.DesiredShiftID,
		Status:         entity.SwapPending,
		CreatedBy:      claims.UserId,
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating swap request"), http.StatusBadRequest)
	}

	return response, nil
}

// MyList returns the caller's own swap requests.
func (r Repository) MyList(ctx context.Context) ([]GetListResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	whereQuery := fmt.Sprintf(`
		WHERE
			sr.deleted_at IS NULL AND
			sr.requested_by = %d
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
			sr.deleted_at IS NULL
	`

	if filter.Status != nil {
		if !validSwapStatus(*filter.Status) {
			return nil, 0, web.NewRequestError(errors.Errorf("unknown status %q", *filter.Status), http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(` AND sr.status = '%s'`, *filter.Status)
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
			count(sr.id)
		FROM swap_requests sr
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting swap requests"), http.StatusInternalServerError)
	}

	return list, count, nil
}

// UpdateStatus approves or denies a pending swap request. Approval reassigns
// the two shifts to each other's employees in the same transaction.
func (r Repository) UpdateStatus(ctx context.Context, request UpdateStatusRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID", "Status"); err != nil {
		return err
	}

	if request.Status != entity.SwapApproved && request.Status != entity.SwapDenied {
		return web.NewRequestError(errors.Errorf("unknown status %q", request.Status), http.StatusBadRequest)
	}

	var detail entity.SwapRequest
	err = r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", request.ID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "selecting swap request"), http.StatusInternalServerError)
	}

	if detail.Status == nil || *detail.Status != entity.SwapPending {
		return web.NewRequestError(errors.New("swap request is not pending"), http.StatusBadRequest)
	}

	err = r.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if request.Status == entity.SwapApproved {
			giveUpOwner, err := r.shiftOwner(ctx, *detail.GiveUpShiftID)
			if err != nil {
				return errors.New("give-up shift no longer exists")
			}
			desiredOwner, err := r.shiftOwner(ctx, *detail.DesiredShiftID)
			if err != nil {
				return errors.New("desired shift no longer exists")
			}

			if _, err := tx.NewUpdate().Table("shifts").
				Set("employee_id = ?", desiredOwner).
				Set("updated_at = ?", time.Now()).
				Set("updated_by = ?", claims.UserId).
				Where("deleted_at IS NULL AND id = ?", *detail.GiveUpShiftID).
				Exec(ctx); err != nil {
				return errors.Wrap(err, "reassigning give-up shift")
			}
			if _, err := tx.NewUpdate().Table("shifts").
				Set("employee_id = ?", giveUpOwner).
				Set("updated_at = ?", time.Now()).
				Set("updated_by = ?", claims.UserId).
				Where("deleted_at IS NULL AND id = ?", *detail.DesiredShiftID).
				Exec(ctx); err != nil {
				return errors.Wrap(err, "reassigning desired shift")
			}
		}

		if _, err := tx.NewUpdate().Table("swap_requests").
			Set("status = ?", request.Status).
			Set("updated_at = ?", time.Now()).
			Set("updated_by = ?", claims.UserId).
			Where("deleted_at IS NULL AND id = ?", request.ID).
			Exec(ctx); err != nil {
			return errors.Wrap(err, "updating swap request")
		}

		return nil
	})
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "resolving swap request"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin); err != nil {
		return err
	}
	return r.DeleteRow(ctx, "swap_requests", id)
}

// CoverUpCreate posts one of the caller's shifts for anyone else to claim.
func (r Repository) CoverUpCreate(ctx context.Context, request CoverUpCreateRequest) (CoverUpCreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return CoverUpCreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "ShiftID"); err != nil {
		return CoverUpCreateResponse{}, err
	}

	owner, err := r.shiftOwner(ctx, *request.ShiftID)
	if err != nil {
		return CoverUpCreateResponse{}, err
	}
	if owner == nil || *owner != claims.UserId {
		return CoverUpCreateResponse{}, web.NewRequestError(errors.New("shift is not assigned to you"), http.StatusForbidden)
	}

	count, err := r.NewSelect().Model(&entity.CoverUpShift{}).
		Where("shift_id = ? AND status = ? AND deleted_at IS NULL", *request.ShiftID, entity.CoverUpOpen).
		Count(ctx)
	if err != nil {
		return CoverUpCreateResponse{}, web.NewRequestError(errors.Wrap(err, "checking cover-up posts"), http.StatusInternalServerError)
	}
	if count > 0 {
		return CoverUpCreateResponse{}, web.NewRequestError(errors.New("shift is already posted"), http.StatusBadRequest)
	}

	response := CoverUpCreateResponse{
		ShiftID:   request.ShiftID,
		PostedBy:  claims.UserId,
		Status:    entity.CoverUpOpen,
		CreatedBy: claims.UserId,
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CoverUpCreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating cover-up post"), http.StatusBadRequest)
	}

	return response, nil
}

// CoverUpList returns open posts for employees and every post for admins.
func (r Repository) CoverUpList(ctx context.Context) ([]CoverUpGetListResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	whereQuery := `
		WHERE
			c.deleted_at IS NULL
	`
	if claims.Role != auth.RoleAdmin {
		whereQuery += fmt.Sprintf(` AND c.status = '%s'`, entity.CoverUpOpen)
	}

	query := fmt.Sprintf(`
		SELECT
			c.id,
			c.shift_id,
			s.date,
			s.start_time,
			s.end_time,
			s.location,
			c.posted_by,
			u.name,
			c.claimed_by,
			c.status
		FROM coverup_shifts c
		LEFT JOIN shifts s ON s.id = c.shift_id
		LEFT JOIN users u ON u.id = c.posted_by
		%s
		ORDER BY s.date asc, s.start_time asc
	`, whereQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting cover-up posts"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []CoverUpGetListResponse

	for rows.Next() {
		var detail CoverUpGetListResponse
		var dateString string
		var startBytes, endBytes []byte

		if err = rows.Scan(
			&detail.ID,
			&detail.ShiftID,
			&dateString,
			&startBytes,
			&endBytes,
			&detail.ShiftLocation,
			&detail.PostedBy,
			&detail.PostedByName,
			&detail.ClaimedBy,
			&detail.Status,
		); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning cover-up list"), http.StatusInternalServerError)
		}

		shiftDate, err := date.ParseDate(dateString)
		if err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "converting date to date.Date"), http.StatusInternalServerError)
		}
		detail.ShiftDate = &shiftDate

		start := string(startBytes)
		end := string(endBytes)
		detail.ShiftStart = &start
		detail.ShiftEnd = &end

		list = append(list, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "reading cover-up list"), http.StatusInternalServerError)
	}

	return list, nil
}

// CoverUpClaim assigns an open post's shift to the caller and closes the
// post, in one transaction.
func (r Repository) CoverUpClaim(ctx context.Context, id int) error {
	claims, err := r.CheckClaims(ctx, auth.RoleEmployee)
	if err != nil {
		return err
	}

	var detail entity.CoverUpShift
	err = r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "selecting cover-up post"), http.StatusInternalServerError)
	}

	if detail.Status == nil || *detail.Status != entity.CoverUpOpen {
		return web.NewRequestError(errors.New("cover-up post is not open"), http.StatusBadRequest)
	}
	if detail.PostedBy != nil && *detail.PostedBy == claims.UserId {
		return web.NewRequestError(errors.New("cannot claim your own post"), http.StatusBadRequest)
	}

	err = r.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewUpdate().Table("shifts").
			Set("employee_id = ?", claims.UserId).
			Set("updated_at = ?", time.Now()).
			Set("updated_by = ?", claims.UserId).
			Where("deleted_at IS NULL AND id = ?", *detail.ShiftID).
			Exec(ctx); err != nil {
			return errors.Wrap(err, "reassigning shift")
		}

		if _, err := tx.NewUpdate().Table("coverup_shifts").
			Set("claimed_by = ?", claims.UserId).
			Set("status = ?", entity.CoverUpClaimed).
			Set("updated_at = ?", time.Now()).
			Set("updated_by = ?", claims.UserId).
			Where("deleted_at IS NULL AND id = ?", id).
			Exec(ctx); err != nil {
			return errors.Wrap(err, "closing cover-up post")
		}

		return nil
	})
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "claiming cover-up post"), http.StatusBadRequest)
	}

	return nil
}

// CoverUpCancel withdraws an open post. Only the poster or an admin can.
func (r Repository) CoverUpCancel(ctx context.Context, id int) error {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	var detail entity.CoverUpShift
	err = r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "selecting cover-up post"), http.StatusInternalServerError)
	}

	if claims.Role != auth.RoleAdmin && (detail.PostedBy == nil || *detail.PostedBy != claims.UserId) {
		return web.NewRequestError(errors.New("post does not belong to you"), http.StatusForbidden)
	}
	if detail.Status == nil || *detail.Status != entity.CoverUpOpen {
		return web.NewRequestError(errors.New("cover-up post is not open"), http.StatusBadRequest)
	}

	q := r.NewUpdate().Table("coverup_shifts").Where("deleted_at IS NULL AND id = ?", id)
	q.Set("status = ?", entity.CoverUpCancelled)
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	if _, err = q.Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "cancelling cover-up post"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) shiftOwner(ctx context.Context, shiftID int) (*int, error) {
	query := fmt.Sprintf(`
		SELECT s.employee_id FROM shifts s WHERE s.deleted_at IS NULL AND s.id = %d
	`, shiftID)

	var owner *int
	err := r.QueryRowContext(ctx, query).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting shift owner"), http.StatusInternalServerError)
	}

	return owner, nil
}

func (r Repository) selectList(ctx context.Context, whereQuery, limitQuery, offsetQuery string) ([]GetListResponse, error) {
	query := fmt.Sprintf(`
		SELECT
			sr.id,
			sr.requested_by,
			ru.name,
			sr.give_up_shift_id,
			gs.date,
			gs.start_time,
			sr.desired_shift_id,
			ds.date,
			ds.start_time,
			ds.employee_id,
			sr.status
		FROM swap_requests sr
		LEFT JOIN users ru ON ru.id = sr.requested_by
		LEFT JOIN shifts gs ON gs.id = sr.give_up_shift_id
		LEFT JOIN shifts ds ON ds.id = sr.desired_shift_id
		%s
		ORDER BY sr.created_at desc
		%s %s
	`, whereQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting swap requests"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		var giveUpDate, desiredDate string
		var giveUpStartBytes, desiredStartBytes []byte

		if err = rows.Scan(
			&detail.ID,
			&detail.RequestedBy,
			&detail.RequestedByName,
			&detail.GiveUpShiftID,
			&giveUpDate,
			&giveUpStartBytes,
			&detail.DesiredShiftID,
			&desiredDate,
			&desiredStartBytes,
			&detail.DesiredShiftOwner,
			&detail.Status,
		); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning swap list"), http.StatusInternalServerError)
		}

		gd, err := date.ParseDate(giveUpDate)
		if err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "converting date to date.Date"), http.StatusInternalServerError)
		}
		dd, err := date.ParseDate(desiredDate)
		if err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "converting date to date.Date"), http.StatusInternalServerError)
		}
		detail.GiveUpShiftDate = &gd
		detail.DesiredShiftDate = &dd

		giveUpStart := string(giveUpStartBytes)
		desiredStart := string(desiredStartBytes)
		detail.GiveUpShiftStart = &giveUpStart
		detail.DesiredShiftStart = &desiredStart

		list = append(list, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "reading swap list"), http.StatusInternalServerError)
	}

	return list, nil
}

func validSwapStatus(s string) bool {
	switch s {
	case entity.SwapPending, entity.SwapApproved, entity.SwapDenied:
		return true
	}
	return false
}
