package model

import "context"

// Privilege describes what the caller may write.
// Only elevated callers may modify the system scope.
type Privilege struct {
	Subject  string
	Elevated bool
}

// ContextManager carries the caller privilege through a request context.
type ContextManager interface {
	SetPrivilegeToContext(ctx context.Context, privilege Privilege) context.Context
	GetPrivilegeFromContext(ctx context.Context) (Privilege, bool)
}
