package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/zulezhe/env-manager/internal/model"
)

var _ model.ScopedBackend = (*Backend)(nil)

// insufficientPrivilege is the SQLSTATE for a denied table grant.
const insufficientPrivilege = "42501"

// changePayload is sent with every change notification.
const changePayload = "Environment"

// Backend stores both scopes in the env_variables table. Names are
// unique per scope ignoring case.
type Backend struct {
	db      *Connection
	channel string
}

func NewBackend(db *Connection, channel string) *Backend {
	return &Backend{
		db:      db,
		channel: channel,
	}
}

func (r *Backend) List(ctx context.Context, scope model.Scope) ([]model.Entry, error) {
	query := `SELECT name, value FROM env_variables WHERE scope = $1 ORDER BY name`

	rows, err := r.db.Query(ctx, query, scope.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list variables: %w", mapError(err))
	}
	defer rows.Close()

	entries := make([]model.Entry, 0)
	for rows.Next() {
		var e model.Entry
		if err := rows.Scan(&e.Name, &e.Value); err != nil {
			return nil, fmt.Errorf("failed to scan variable: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate variables: %w", mapError(err))
	}

	return entries, nil
}

func (r *Backend) Get(ctx context.Context, scope model.Scope, name string) (string, error) {
	query := `SELECT value FROM env_variables WHERE scope = $1 AND lower(name) = lower($2)`

	var value string
	err := r.db.QueryRow(ctx, query, scope.String(), name).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", model.ErrNotFound
		}
		return "", fmt.Errorf("failed to get variable: %w", mapError(err))
	}

	return value, nil
}

func (r *Backend) Set(ctx context.Context, scope model.Scope, name, value string) error {
	query := `INSERT INTO env_variables (scope, name, value)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (scope, lower(name))
			  DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

	if _, err := r.db.Exec(ctx, query, scope.String(), name, value); err != nil {
		return fmt.Errorf("failed to set variable: %w", mapError(err))
	}

	return nil
}

func (r *Backend) Delete(ctx context.Context, scope model.Scope, name string) error {
	query := `DELETE FROM env_variables WHERE scope = $1 AND lower(name) = lower($2)`

	result, err := r.db.Exec(ctx, query, scope.String(), name)
	if err != nil {
		return fmt.Errorf("failed to delete variable: %w", mapError(err))
	}
	if result.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

// NotifyChanged publishes a NOTIFY on the change channel.
func (r *Backend) NotifyChanged(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `SELECT pg_notify($1, $2)`, r.channel, changePayload); err != nil {
		return fmt.Errorf("failed to notify %s: %w", r.channel, mapError(err))
	}
	return nil
}

func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == insufficientPrivilege {
		return fmt.Errorf("%w: %w", model.ErrPermissionDenied, err)
	}
	return err
}
