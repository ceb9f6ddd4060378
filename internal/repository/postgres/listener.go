package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/zulezhe/env-manager/internal/logger"
	"github.com/zulezhe/env-manager/internal/model"
)

var _ model.ChangeListener = (*Listener)(nil)

// Listener receives change notifications published by any Backend
// sharing the channel. It holds one pooled connection while listening.
type Listener struct {
	db      *Connection
	channel string
	logger  *logger.Logger
}

func NewListener(db *Connection, channel string, logger *logger.Logger) *Listener {
	return &Listener{
		db:      db,
		channel: channel,
		logger:  logger,
	}
}

// Listen blocks calling handle for each notification until ctx is done.
func (l *Listener) Listen(ctx context.Context, handle func(model.ChangeEvent)) error {
	conn, err := l.db.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire listener connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", l.channel, err)
	}
	l.logger.Info("listening for environment changes", "channel", l.channel)

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("failed to wait for notification: %w", err)
		}

		handle(model.ChangeEvent{
			Source:  notification.Channel,
			Payload: notification.Payload,
		})
	}
}
