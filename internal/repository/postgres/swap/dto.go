package swap

import (
	"github.com/Azure/go-autorest/autorest/date"
	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Status *string
}

type GetListResponse struct {
	ID                 int        `json:"id"`
	RequestedBy        *int       `json:"requested_by"`
	RequestedByName    *string    `json:"requested_by_name"`
	GiveUpShiftID      *int       `json:"give_up_shift"`
	GiveUpShiftDate    *date.Date `json:"give_up_shift_date"`
	GiveUpShiftStart   *string    `json:"give_up_shift_start"`
	DesiredShiftID     *int       `json:"desired_shift"`
	DesiredShiftDate   *date.Date `json:"desired_shift_date"`
	DesiredShiftStart  *string    `json:"desired_shift_start"`
	DesiredShiftOwner  *int       `json:"desired_shift_owner"`
	Status             *string    `json:"status"`
}

type CreateRequest struct {
	GiveUpShiftID  *int `json:"give_up_shift" form:"give_up_shift"`
	DesiredShiftID *int `json:"desired_shift" form:"desired_shift"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:swap_requests"`

	ID             int    `json:"id" bun:"id,pk,autoincrement"`
	RequestedBy    int    `json:"requested_by" bun:"requested_by"`
	GiveUpShiftID  *int   `json:"give_up_shift" bun:"give_up_shift_id"`
	DesiredShiftID *int   `json:"desired_shift" bun:"desired_shift_id"`
	Status         string `json:"status" bun:"status"`
	CreatedBy      int    `json:"-" bun:"created_by"`
}

type UpdateStatusRequest struct {
	ID     int    `json:"id" form:"id"`
	Status string `json:"status" form:"status"`
}

type CoverUpGetListResponse struct {
	ID            int        `json:"id"`
	ShiftID       *int       `json:"shift"`
	ShiftDate     *date.Date `json:"shift_date"`
	ShiftStart    *string    `json:"shift_start"`
	ShiftEnd      *string    `json:"shift_end"`
	ShiftLocation *string    `json:"shift_location"`
	PostedBy      *int       `json:"posted_by"`
	PostedByName  *string    `json:"posted_by_name"`
	ClaimedBy     *int       `json:"claimed_by"`
	Status        *string    `json:"status"`
}

type CoverUpCreateRequest struct {
	ShiftID *int `json:"shift" form:"shift"`
}

type CoverUpCreateResponse struct {
	bun.BaseModel `bun:"table:coverup_shifts"`

	ID        int    `json:"id" bun:"id,pk,autoincrement"`
	ShiftID   *int   `json:"shift" bun:"shift_id"`
	PostedBy  int    `json:"posted_by" bun:"posted_by"`
	Status    string `json:"status" bun:"status"`
	CreatedBy int    `json:"-" bun:"created_by"`
}
