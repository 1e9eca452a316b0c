package attendance

import (
	"context"

	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/attendance"
)

type Attendance interface {
	ClockIn(ctx context.Context, request attendance.ClockInRequest) (attendance.ClockInResponse, error)
	ClockOut(ctx context.Context, request attendance.ClockOutRequest) error
	Active(ctx context.Context) (attendance.GetListResponse, error)
	GetAll(ctx context.Context, filter attendance.Filter) ([]attendance.GetListResponse, int, error)
	GetByUser(ctx context.Context, userID int) ([]attendance.GetListResponse, error)
}
