package inquiry

import (
	"context"

	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/inquiry"
)

type Inquiry interface {
	Create(ctx context.Context, request inquiry.CreateRequest) (inquiry.CreateResponse, error)
	MyList(ctx context.Context) ([]inquiry.GetListResponse, error)
	GetList(ctx context.Context, filter inquiry.Filter) ([]inquiry.GetListResponse, int, error)
	Answer(ctx context.Context, request inquiry.AnswerRequest) error
	Delete(ctx context.Context, id int) error
}
