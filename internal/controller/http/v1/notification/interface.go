package notification

import (
	"context"

	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/notification"
)

type Notification interface {
	MyList(ctx context.Context) ([]notification.GetListResponse, error)
	MarkRead(ctx context.Context, id int) error
}
