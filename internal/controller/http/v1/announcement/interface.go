package announcement

import (
	"context"

	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/announcement"
)

type Announcement interface {
	Create(ctx context.Context, request announcement.CreateRequest) (announcement.CreateResponse, error)
	GetList(ctx context.Context, filter announcement.Filter) ([]announcement.GetListResponse, int, error)
	GetById(ctx context.Context, id int) (announcement.GetDetailByIdResponse, error)
	MyList(ctx context.Context) ([]announcement.GetListResponse, error)
	UpdateColumns(ctx context.Context, request announcement.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
