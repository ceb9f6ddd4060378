package model

import (
	"context"
	"net"
)

// SecurityLayer opens the listener the API server accepts on.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is a long-running network endpoint with graceful shutdown.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}

// ChangeEvent is delivered to change listeners after NotifyChanged.
type ChangeEvent struct {
	Source  string
	Payload string
}

// ChangeListener blocks delivering change events until ctx is done.
type ChangeListener interface {
	Listen(ctx context.Context, handle func(ChangeEvent)) error
}
