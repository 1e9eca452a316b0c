package entity

import (
	"github.com/uptrace/bun"
)

const (
	SwapPending  = "pending"
	SwapApproved = "approved"
	SwapDenied   = "denied"
)

// SwapRequest is an employee's offer to give up one shift in exchange for
// another employee's shift. Approval swaps the two assignments.
type SwapRequest struct {
	bun.BaseModel `bun:"table:swap_requests"`

	BasicEntity
	RequestedBy    *int    `json:"requested_by" bun:"requested_by"`
	GiveUpShiftID  *int    `json:"give_up_shift" bun:"give_up_shift_id"`
	DesiredShiftID *int    `json:"desired_shift" bun:"desired_shift_id"`
	Status         *string `json:"status" bun:"status"`
}

// Cover-up statuses: open for claiming, claimed, cancelled.
const (
	CoverUpOpen      = "O"
	CoverUpClaimed   = "C"
	CoverUpCancelled = "X"
)

// CoverUpShift is a shift posted for any other employee to pick up.
type CoverUpShift struct {
	bun.BaseModel `bun:"table:coverup_shifts"`

	BasicEntity
	ShiftID   *int    `json:"shift" bun:"shift_id"`
	PostedBy  *int    `json:"posted_by" bun:"posted_by"`
	ClaimedBy *int    `json:"claimed_by" bun:"claimed_by"`
	Status    *string `json:"status" bun:"status"`
}
