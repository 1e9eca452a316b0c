package leave

import (
	"context"

	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/leave"
)

type Leave interface {
	Create(ctx context.Context, request leave.CreateRequest) (leave.CreateResponse, error)
	MyList(ctx context.Context) ([]leave.GetListResponse, error)
	GetList(ctx context.Context, filter leave.Filter) ([]leave.GetListResponse, int, error)
	UpdateStatus(ctx context.Context, request leave.UpdateStatusRequest) error
	Delete(ctx context.Context, id int) error
}
