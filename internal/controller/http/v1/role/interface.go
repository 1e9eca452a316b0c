package role

import (
	"context"

	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/role"
)

type Role interface {
	GetList(ctx context.Context, filter role.Filter) ([]role.GetListResponse, int, error)
	Create(ctx context.Context, request role.CreateRequest) (role.CreateResponse, error)
	UpdateColumns(ctx context.Context, request role.UpdateRequest) error
	Delete(ctx context.Context, id int) error

	Assign(ctx context.Context, request role.AssignRequest) (role.AssignResponse, error)
	Assignments(ctx context.Context) ([]role.AssignmentListResponse, error)
}
