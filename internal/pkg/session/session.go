// Package session stores the issued refresh token per role and user in
// redis, so that an employee session and an admin session for the same
// person can coexist and be revoked independently.
package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// ErrNoSession is returned when no refresh token is stored for the
// role/user pair.
var ErrNoSession = errors.New("no active session")

type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func key(role string, userID int) string {
	return fmt.Sprintf("session:%s:%d", strings.ToLower(role), userID)
}

// SetRefreshToken records the refresh token issued for this role/user,
// replacing any previous one.
func (s *Store) SetRefreshToken(ctx context.Context, role string, userID int, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key(role, userID), token, ttl).Err(); err != nil {
		return errors.Wrap(err, "storing refresh token")
	}
	return nil
}

// RefreshToken returns the stored refresh token for this role/user.
func (s *Store) RefreshToken(ctx context.Context, role string, userID int) (string, error) {
	token, err := s.client.Get(ctx, key(role, userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", errors.Wrap(err, "reading refresh token")
	}
	return token, nil
}

// Clear drops the stored session for this role/user.
func (s *Store) Clear(ctx context.Context, role string, userID int) error {
	if err := s.client.Del(ctx, key(role, userID)).Err(); err != nil {
		return errors.Wrap(err, "clearing session")
	}
	return nil
}
