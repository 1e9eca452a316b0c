// Package postgresql wraps the bun database handle with the claim and
// validation helpers every repository needs.
package postgresql

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"github.com/Jaspa-lSingh/Shiftwise/foundation/web"
	"github.com/Jaspa-lSingh/Shiftwise/internal/auth"
)

type Database struct {
	*bun.DB
}

// Settings describes how to reach the database.
type Settings struct {
	Username   string
	Password   string
	Host       string
	Port       string
	Name       string
	DisableTLS bool
}

// NewDB opens a bun handle over pgdriver with query logging on errors.
func NewDB(s Settings) *Database {
	addr := s.Host
	if s.Port != "" {
		addr = fmt.Sprintf("%s:%s", s.Host, s.Port)
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithAddr(addr),
		pgdriver.WithUser(s.Username),
		pgdriver.WithPassword(s.Password),
		pgdriver.WithDatabase(s.Name),
		pgdriver.WithInsecure(s.DisableTLS),
	))

	db := bun.NewDB(sqldb, pgdialect.New())
	db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithEnabled(false), bundebug.FromEnv("BUNDEBUG")))

	return &Database{DB: db}
}

// CheckClaims pulls the authenticated claims out of the context and,
// when roles are given, requires one of them.
func (d Database) CheckClaims(ctx context.Context, roles ...string) (auth.Claims, error) {
	claims, err := auth.GetClaims(ctx)
	if err != nil {
		return auth.Claims{}, err
	}

	if len(roles) > 0 && !claims.Authorized(roles...) {
		return auth.Claims{}, web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusUnauthorized)
	}

	return claims, nil
}

// ValidateStruct checks that the named fields of a request struct were
// provided.
func (d Database) ValidateStruct(s interface{}, requiredFields ...string) error {
	return web.ValidateRequired(s, requiredFields...)
}

// DeleteRow soft-deletes one row by id, stamping who deleted it.
func (d Database) DeleteRow(ctx context.Context, table string, id int) error {
	claims, err := d.CheckClaims(ctx)
	if err != nil {
		return err
	}

	result, err := d.NewUpdate().
		Table(table).
		Where("deleted_at IS NULL AND id = ?", id).
		Set("deleted_at = ?", time.Now()).
		Set("deleted_by = ?", claims.UserId).
		Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrapf(err, "deleting from %s", table), http.StatusInternalServerError)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "checking delete result"), http.StatusInternalServerError)
	}
	if affected == 0 {
		return web.NewRequestError(errors.Errorf("row %d not found in %s", id, table), http.StatusNotFound)
	}

	return nil
}
