package middleware

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/zulezhe/env-manager/internal/logger"
	"github.com/zulezhe/env-manager/internal/model"
)

// TokenService resolves the privilege a bearer token grants.
type TokenService interface {
	GetPrivilege(ctx context.Context, token string) (model.Privilege, error)
}

// Authenticate resolves bearer tokens and injects the caller privilege into context.
// Requests without a token proceed unprivileged.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// AuthFunc parses the Authorization header and returns a context carrying the privilege.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	var tokenString string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if authHeaders := md.Get("authorization"); len(authHeaders) > 0 {
			tokenString = strings.TrimSpace(strings.TrimPrefix(authHeaders[0], "Bearer "))
		}
	}

	if tokenString == "" {
		return m.contextManager.SetPrivilegeToContext(ctx, model.Privilege{}), nil
	}

	privilege, err := m.tokenService.GetPrivilege(ctx, tokenString)
	if err != nil {
		m.logger.Debug("rejected authorization token", "error", err)
		return nil, status.Error(codes.Unauthenticated, "invalid authorization token")
	}

	return m.contextManager.SetPrivilegeToContext(ctx, privilege), nil
}
