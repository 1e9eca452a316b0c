package shift

import (
	"context"

	"github.com/Jaspa-lSingh/Shiftwise/internal/entity"
	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/shift"
)

type Shift interface {
	GetById(ctx context.Context, id int) (entity.Shift, error)
	GetList(ctx context.Context, filter shift.Filter) ([]shift.GetListResponse, int, error)
	MyShifts(ctx context.Context) ([]shift.GetListResponse, error)
	AvailableForSwap(ctx context.Context) ([]shift.GetListResponse, error)

	Create(ctx context.Context, request shift.CreateRequest) (shift.CreateResponse, error)
	CreateWithUser(ctx context.Context, request shift.CreateWithUserRequest) (shift.CreateResponse, error)
	UpdateColumns(ctx context.Context, request shift.UpdateRequest) error
	UpdateMyStatus(ctx context.Context, request shift.UpdateStatusRequest) (entity.Shift, error)
	Delete(ctx context.Context, id int) error
}
