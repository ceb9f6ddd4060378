package handler

import (
	"context"
	"errors"
	"io/fs"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/zulezhe/env-manager/internal/model"
)

func handleError(err error) error {
	switch {
	case errors.Is(err, model.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, model.ErrPermissionDenied),
		errors.Is(err, model.ErrBackendAccess),
		errors.Is(err, model.ErrTokenMismatch):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, model.ErrTokenInvalid):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, model.ErrProtectedVariable), errors.Is(err, model.ErrArchiveDisabled):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, model.ErrInvalidID),
		errors.Is(err, model.ErrInvalidScope),
		errors.Is(err, model.ErrInvalidQuery),
		errors.Is(err, model.ErrParse):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
