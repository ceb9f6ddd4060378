package middleware

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/zulezhe/env-manager/internal/logger"
)

// Logging is a unary interceptor that logs gRPC requests and results.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// HandleGRPC logs method name, duration and status for each unary request.
func (l *Logging) HandleGRPC(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	log := l.logger.With("request_id", uuid.NewString(), "method", info.FullMethod)

	log.Debug("gRPC request started")

	resp, err := handler(ctx, req)

	statusCode := codes.OK
	if err != nil {
		if st, ok := status.FromError(err); ok {
			statusCode = st.Code()
		} else {
			statusCode = codes.Internal
		}
	}

	log.Info("gRPC request completed",
		"duration_ms", time.Since(start).Milliseconds(),
		"status", statusCode.String())

	// client mistakes are not server errors
	if err != nil && statusCode == codes.Internal {
		log.Error("gRPC request failed", "error", err.Error())
	}

	return resp, err
}
