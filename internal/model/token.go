package model

// TokenManager issues and parses elevation tokens.
type TokenManager interface {
	GenerateElevatedToken(subject string) (string, error)
	ParseToken(token string) (Privilege, error)
}
