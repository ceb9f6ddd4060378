package model

import "errors"

var (
	// ErrNotFound is returned when a variable does not exist in its scope.
	ErrNotFound = errors.New("variable not found")
	// ErrPermissionDenied is returned when the caller lacks the privilege
	// the operation needs. Retrying with elevated privilege may succeed.
	ErrPermissionDenied = errors.New("permission denied, retry with elevated privilege")
	// ErrProtectedVariable refuses deletion of a protected system variable.
	ErrProtectedVariable = errors.New("protected system variable")
	// ErrParse is returned for malformed snapshot input.
	ErrParse = errors.New("malformed snapshot")
	// ErrBackendAccess is returned when a scope cannot be opened.
	ErrBackendAccess = errors.New("cannot open environment scope")
	// ErrWrite is returned when a set or delete call itself failed.
	ErrWrite = errors.New("environment write failed")
	// ErrInvalidID is returned for ids that do not decode to a scope and name.
	ErrInvalidID = errors.New("invalid variable id")
	// ErrInvalidScope is returned for unknown scope tags.
	ErrInvalidScope = errors.New("invalid scope")
	// ErrInvalidQuery is returned when a search expression does not compile.
	ErrInvalidQuery = errors.New("invalid search query")
	// ErrArchiveDisabled is returned by archive operations when no archive is configured.
	ErrArchiveDisabled = errors.New("snapshot archive is not configured")
)

var (
	// ErrTokenInvalid is returned for elevation tokens that fail signature,
	// expiry or claim checks.
	ErrTokenInvalid = errors.New("elevation token invalid")
	// ErrTokenMismatch is returned when the elevation passphrase is wrong or
	// elevation is disabled.
	ErrTokenMismatch = errors.New("elevation passphrase mismatch")
)
