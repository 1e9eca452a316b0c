package user

import (
	"context"

	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/user"
)

type User interface {
	GetList(ctx context.Context, filter user.Filter) ([]user.GetListResponse, int, error)
	GetById(ctx context.Context, id int) (user.GetDetailByIdResponse, error)
	GetProfile(ctx context.Context) (user.GetDetailByIdResponse, error)

	Create(ctx context.Context, request user.CreateRequest) (user.CreateResponse, error)
	UpdateColumns(ctx context.Context, request user.UpdateRequest) error
	UpdateProfileImage(ctx context.Context, path string) error
	Delete(ctx context.Context, id int) error
}
