package auth

import (
	"context"
	"time"

	"github.com/Jaspa-lSingh/Shiftwise/internal/entity"
)

type User interface {
	GetByEmail(ctx context.Context, email string) (entity.User, error)
}

type Session interface {
	SetRefreshToken(ctx context.Context, role string, userID int, token string, ttl time.Duration) error
	RefreshToken(ctx context.Context, role string, userID int) (string, error)
	Clear(ctx context.Context, role string, userID int) error
}
