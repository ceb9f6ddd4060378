package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zulezhe/env-manager/internal/logger"
	"github.com/zulezhe/env-manager/internal/mocks"
	"github.com/zulezhe/env-manager/internal/model"
)

func TestTokenService_Elevate(t *testing.T) {
	ctx := context.Background()
	manager := mocks.NewTokenManager(t)
	manager.On("GenerateElevatedToken", elevatedSubject).Return("elevated-token", nil).Once()

	svc := NewTokenService(manager, "s3cret", logger.New(0))

	token, err := svc.Elevate(ctx, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "elevated-token", token)
}

func TestTokenService_Elevate_Refused(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		presented  string
	}{
		{name: "wrong passphrase", configured: "s3cret", presented: "guess"},
		{name: "elevation disabled", configured: "", presented: ""},
		{name: "prefix only", configured: "s3cret", presented: "s3c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := mocks.NewTokenManager(t)
			svc := NewTokenService(manager, tt.configured, logger.New(0))

			_, err := svc.Elevate(context.Background(), tt.presented)
			assert.ErrorIs(t, err, model.ErrTokenMismatch)
		})
	}
}

func TestTokenService_Elevate_ManagerError(t *testing.T) {
	manager := mocks.NewTokenManager(t)
	manager.On("GenerateElevatedToken", elevatedSubject).Return("", assert.AnError).Once()

	svc := NewTokenService(manager, "s3cret", logger.New(0))

	_, err := svc.Elevate(context.Background(), "s3cret")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestTokenService_GetPrivilege(t *testing.T) {
	manager := mocks.NewTokenManager(t)
	manager.On("ParseToken", "good").Return(model.Privilege{Subject: "operator", Elevated: true}, nil).Once()
	manager.On("ParseToken", "bad").Return(model.Privilege{}, model.ErrTokenInvalid).Once()

	svc := NewTokenService(manager, "s3cret", logger.New(0))

	privilege, err := svc.GetPrivilege(context.Background(), "good")
	require.NoError(t, err)
	assert.True(t, privilege.Elevated)

	_, err = svc.GetPrivilege(context.Background(), "bad")
	assert.ErrorIs(t, err, model.ErrTokenInvalid)
}
