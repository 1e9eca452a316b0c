package swap

import (
	"context"

	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/swap"
)

type Swap interface {
	Create(ctx context.Context, request swap.CreateRequest) (swap.CreateResponse, error)
	MyList(ctx context.Context) ([]swap.GetListResponse, error)
	GetList(ctx context.Context, filter swap.Filter) ([]swap.GetListResponse, int, error)
	UpdateStatus(ctx context.Context, request swap.UpdateStatusRequest) error
	Delete(ctx context.Context, id int) error

	CoverUpCreate(ctx context.Context, request swap.CoverUpCreateRequest) (swap.CoverUpCreateResponse, error)
	CoverUpList(ctx context.Context) ([]swap.CoverUpGetListResponse, error)
	CoverUpClaim(ctx context.Context, id int) error
	CoverUpCancel(ctx context.Context, id int) error
}
