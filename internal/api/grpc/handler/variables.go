package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/zulezhe/env-manager/internal/api/grpc/rpc"
	"github.com/zulezhe/env-manager/internal/logger"
	"github.com/zulezhe/env-manager/internal/model"
)

// VariableService defines the environment variable operations exposed over gRPC.
type VariableService interface {
	List(ctx context.Context) ([]model.EnvironmentVariable, error)
	ListInvalid(ctx context.Context) ([]model.EnvironmentVariable, error)
	Get(ctx context.Context, id string) (string, error)
	Create(ctx context.Context, scope model.Scope, name, value string) (model.EnvironmentVariable, error)
	Update(ctx context.Context, id, value string) (model.EnvironmentVariable, error)
	Delete(ctx context.Context, id string) error
	Validate(ctx context.Context, id string) (bool, error)
	Search(ctx context.Context, query model.SearchQuery) ([]model.EnvironmentVariable, error)
	Export(ctx context.Context) (string, error)
	Import(ctx context.Context, path string) ([]model.EnvironmentVariable, error)
	ListArchived(ctx context.Context) ([]string, error)
	ImportArchived(ctx context.Context, key string) ([]model.EnvironmentVariable, error)
	Expand(ctx context.Context, text string) (string, error)
}

// Elevator exchanges the admin passphrase for an elevated token.
type Elevator interface {
	Elevate(ctx context.Context, passphrase string) (string, error)
}

var _ rpc.VariablesServer = (*Variables)(nil)

// Variables handles gRPC endpoints for environment variables.
type Variables struct {
	variableService VariableService
	elevator        Elevator
	logger          *logger.Logger
}

// NewVariables creates a new Variables handler.
func NewVariables(variableService VariableService, elevator Elevator, logger *logger.Logger) *Variables {
	return &Variables{
		variableService: variableService,
		elevator:        elevator,
		logger:          logger,
	}
}

// List returns every variable of both scopes with computed validity.
func (h *Variables) List(ctx context.Context, _ *rpc.Empty) (*rpc.ListResponse, error) {
	vars, err := h.variableService.List(ctx)
	if err != nil {
		h.logger.Error("Variables handler: list failed", "error", err.Error())
		return nil, handleError(err)
	}
	return listResponse(vars), nil
}

// ListInvalid returns variables that failed validation.
func (h *Variables) ListInvalid(ctx context.Context, _ *rpc.Empty) (*rpc.ListResponse, error) {
	vars, err := h.variableService.ListInvalid(ctx)
	if err != nil {
		h.logger.Error("Variables handler: list invalid failed", "error", err.Error())
		return nil, handleError(err)
	}
	return listResponse(vars), nil
}

// Get returns the stored value of a variable.
func (h *Variables) Get(ctx context.Context, req *rpc.GetRequest) (*rpc.GetResponse, error) {
	value, err := h.variableService.Get(ctx, req.ID)
	if err != nil {
		h.logger.Debug("Variables handler: get failed", "id", req.ID, "error", err.Error())
		return nil, handleError(err)
	}
	return &rpc.GetResponse{Value: value}, nil
}

// Create stores a new variable in the requested scope.
func (h *Variables) Create(ctx context.Context, req *rpc.CreateRequest) (*rpc.VariableResponse, error) {
	scope, err := model.ParseScope(req.Type)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if req.Name == "" {
		return nil, status.Error(codes.InvalidArgument, "variable name is required")
	}

	variable, err := h.variableService.Create(ctx, scope, req.Name, req.Value)
	if err != nil {
		h.logger.Error("Variables handler: create failed",
			"scope", scope.String(),
			"name", req.Name,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Variables handler: variable created", "id", variable.ID)
	return &rpc.VariableResponse{Variable: variable}, nil
}

// Update overwrites the value of an existing variable.
func (h *Variables) Update(ctx context.Context, req *rpc.UpdateRequest) (*rpc.VariableResponse, error) {
	variable, err := h.variableService.Update(ctx, req.ID, req.Value)
	if err != nil {
		h.logger.Error("Variables handler: update failed", "id", req.ID, "error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Variables handler: variable updated", "id", variable.ID)
	return &rpc.VariableResponse{Variable: variable}, nil
}

// Delete removes a variable.
func (h *Variables) Delete(ctx context.Context, req *rpc.DeleteRequest) (*rpc.Empty, error) {
	if err := h.variableService.Delete(ctx, req.ID); err != nil {
		h.logger.Error("Variables handler: delete failed", "id", req.ID, "error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Variables handler: variable deleted", "id", req.ID)
	return &rpc.Empty{}, nil
}

// Validate reports whether a single variable passes validation.
func (h *Variables) Validate(ctx context.Context, req *rpc.ValidateRequest) (*rpc.ValidateResponse, error) {
	valid, err := h.variableService.Validate(ctx, req.ID)
	if err != nil {
		return nil, handleError(err)
	}
	return &rpc.ValidateResponse{IsValid: valid}, nil
}

// Search filters the listing by keywords, scope and expression.
func (h *Variables) Search(ctx context.Context, req *rpc.SearchRequest) (*rpc.ListResponse, error) {
	vars, err := h.variableService.Search(ctx, req.Query)
	if err != nil {
		h.logger.Debug("Variables handler: search failed", "error", err.Error())
		return nil, handleError(err)
	}
	return listResponse(vars), nil
}

// Export writes a snapshot on the server host and returns its path.
func (h *Variables) Export(ctx context.Context, _ *rpc.Empty) (*rpc.ExportResponse, error) {
	path, err := h.variableService.Export(ctx)
	if err != nil {
		h.logger.Error("Variables handler: export failed", "error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Variables handler: snapshot exported", "path", path)
	return &rpc.ExportResponse{Path: path}, nil
}

// Import applies a snapshot file on the server host.
func (h *Variables) Import(ctx context.Context, req *rpc.ImportRequest) (*rpc.ListResponse, error) {
	if req.Path == "" {
		return nil, status.Error(codes.InvalidArgument, "snapshot path is required")
	}

	vars, err := h.variableService.Import(ctx, req.Path)
	if err != nil {
		h.logger.Error("Variables handler: import failed", "path", req.Path, "error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Variables handler: snapshot imported", "path", req.Path, "applied", len(vars))
	return listResponse(vars), nil
}

// ListArchived returns the keys of archived snapshots.
func (h *Variables) ListArchived(ctx context.Context, _ *rpc.Empty) (*rpc.ListArchivedResponse, error) {
	keys, err := h.variableService.ListArchived(ctx)
	if err != nil {
		return nil, handleError(err)
	}
	if keys == nil {
		keys = []string{}
	}
	return &rpc.ListArchivedResponse{Keys: keys}, nil
}

// ImportArchived applies an archived snapshot.
func (h *Variables) ImportArchived(ctx context.Context, req *rpc.ImportArchivedRequest) (*rpc.ListResponse, error) {
	vars, err := h.variableService.ImportArchived(ctx, req.Key)
	if err != nil {
		h.logger.Error("Variables handler: archived import failed", "key", req.Key, "error", err.Error())
		return nil, handleError(err)
	}
	return listResponse(vars), nil
}

// Expand resolves %NAME% references against the current environment.
func (h *Variables) Expand(ctx context.Context, req *rpc.ExpandRequest) (*rpc.ExpandResponse, error) {
	text, err := h.variableService.Expand(ctx, req.Text)
	if err != nil {
		return nil, handleError(err)
	}
	return &rpc.ExpandResponse{Text: text}, nil
}

// Elevate exchanges the admin passphrase for a bearer token that unlocks system scope writes.
func (h *Variables) Elevate(ctx context.Context, req *rpc.ElevateRequest) (*rpc.ElevateResponse, error) {
	token, err := h.elevator.Elevate(ctx, req.Passphrase)
	if err != nil {
		h.logger.Warn("Variables handler: elevation refused", "error", err.Error())
		return nil, handleError(err)
	}
	return &rpc.ElevateResponse{Token: token}, nil
}

func listResponse(vars []model.EnvironmentVariable) *rpc.ListResponse {
	if vars == nil {
		vars = []model.EnvironmentVariable{}
	}
	return &rpc.ListResponse{Variables: vars}
}
