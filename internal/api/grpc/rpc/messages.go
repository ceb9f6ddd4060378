package rpc

import "github.com/zulezhe/env-manager/internal/model"

type Empty struct{}

type ListResponse struct {
	Variables []model.EnvironmentVariable `json:"variables"`
}

type GetRequest struct {
	ID string `json:"id"`
}

type GetResponse struct {
	Value string `json:"value"`
}

// CreateRequest carries the scope tag as text so that unknown tags
// surface as InvalidArgument rather than a decoding failure.
type CreateRequest struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

type UpdateRequest struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

type VariableResponse struct {
	Variable model.EnvironmentVariable `json:"variable"`
}

type DeleteRequest struct {
	ID string `json:"id"`
}

type ValidateRequest struct {
	ID string `json:"id"`
}

type ValidateResponse struct {
	IsValid bool `json:"isValid"`
}

type SearchRequest struct {
	Query model.SearchQuery `json:"query"`
}

type ExportResponse struct {
	Path string `json:"path"`
}

type ImportRequest struct {
	Path string `json:"path"`
}

type ImportArchivedRequest struct {
	Key string `json:"key"`
}

type ListArchivedResponse struct {
	Keys []string `json:"keys"`
}

type ExpandRequest struct {
	Text string `json:"text"`
}

type ExpandResponse struct {
	Text string `json:"text"`
}

type ElevateRequest struct {
	Passphrase string `json:"passphrase"`
}

type ElevateResponse struct {
	Token string `json:"token"`
}
