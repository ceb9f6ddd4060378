package router

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"

	"github.com/zulezhe/env-manager/internal/api/grpc/handler"
	"github.com/zulezhe/env-manager/internal/api/grpc/middleware"
	"github.com/zulezhe/env-manager/internal/api/grpc/rpc"
	"github.com/zulezhe/env-manager/internal/logger"
	"github.com/zulezhe/env-manager/internal/model"
)

// Router wires the Variables service and its interceptors into a gRPC server.
type Router struct {
	variableService handler.VariableService
	elevator        handler.Elevator
	tokenService    middleware.TokenService
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// New creates a new gRPC Router instance.
func New(
	variableService handler.VariableService,
	elevator handler.Elevator,
	tokenService middleware.TokenService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		variableService: variableService,
		elevator:        elevator,
		tokenService:    tokenService,
		contextManager:  contextManager,
		logger:          logger,
	}
}

// authSkip selects every method except Elevate for authentication.
func authSkip(_ context.Context, c interceptors.CallMeta) bool {
	return c.FullMethod() != rpc.ElevateMethod
}

// Register builds the gRPC server with request logging and authentication
// interceptors and registers the Variables service on it.
func (r *Router) Register(opts ...grpc.ServerOption) *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authSkip),
			),
		),
	}, opts...)

	s := grpc.NewServer(opts...)
	rpc.RegisterVariablesServer(s, handler.NewVariables(r.variableService, r.elevator, r.logger))

	return s
}
