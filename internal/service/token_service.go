package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"

	"github.com/zulezhe/env-manager/internal/logger"
	"github.com/zulezhe/env-manager/internal/model"
)

// elevatedSubject is the subject carried by tokens issued through Elevate.
const elevatedSubject = "operator"

// TokenService issues elevation tokens and resolves the privilege a
// presented token grants.
type TokenService struct {
	manager    model.TokenManager
	passphrase string
	logger     *logger.Logger
}

func NewTokenService(manager model.TokenManager, passphrase string, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, passphrase: passphrase, logger: logger}
}

// Elevate exchanges the admin passphrase for an elevated token.
// An unset passphrase disables elevation.
func (s *TokenService) Elevate(_ context.Context, passphrase string) (string, error) {
	if s.passphrase == "" || !equalSecrets(s.passphrase, passphrase) {
		s.logger.Warn("elevation refused")
		return "", model.ErrTokenMismatch
	}

	token, err := s.manager.GenerateElevatedToken(elevatedSubject)
	if err != nil {
		return "", fmt.Errorf("issue elevated token: %w", err)
	}
	return token, nil
}

func (s *TokenService) GetPrivilege(_ context.Context, token string) (model.Privilege, error) {
	return s.manager.ParseToken(token)
}

func equalSecrets(a, b string) bool {
	ha := sha256.Sum256([]byte(a))
	hb := sha256.Sum256([]byte(b))
	return subtle.ConstantTimeCompare(ha[:], hb[:]) == 1
}
