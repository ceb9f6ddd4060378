package middleware

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/zulezhe/env-manager/internal/mocks"
	"github.com/zulezhe/env-manager/internal/model"
	"github.com/zulezhe/env-manager/internal/testutil"
)

func TestAuthenticate_AuthFunc(t *testing.T) {
	t.Parallel()

	elevated := model.Privilege{Subject: "operator", Elevated: true}

	tests := []struct {
		name          string
		mdAuthHeader  string
		callsService  bool
		svcPrivilege  model.Privilege
		svcErr        error
		wantPrivilege model.Privilege
		wantErr       bool
	}{
		{
			name:          "missing authorization header is unprivileged",
			mdAuthHeader:  "",
			wantPrivilege: model.Privilege{},
		},
		{
			name:          "bare bearer prefix is unprivileged",
			mdAuthHeader:  "Bearer ",
			wantPrivilege: model.Privilege{},
		},
		{
			name:         "invalid token",
			mdAuthHeader: "Bearer invalid",
			callsService: true,
			svcErr:       model.ErrTokenInvalid,
			wantErr:      true,
		},
		{
			name:          "valid token",
			mdAuthHeader:  "Bearer token",
			callsService:  true,
			svcPrivilege:  elevated,
			wantPrivilege: elevated,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cm := mocks.NewContextManager(t)
			if !tt.wantErr {
				cm.On("SetPrivilegeToContext", mock.Anything, tt.wantPrivilege).Return(context.Background()).Once()
			}

			svc := mocks.NewTokenService(t)
			if tt.callsService {
				token := strings.TrimPrefix(tt.mdAuthHeader, "Bearer ")
				svc.On("GetPrivilege", mock.Anything, token).Return(tt.svcPrivilege, tt.svcErr).Once()
			}
			m := NewAuthenticate(svc, cm, testutil.MakeNoopLogger())

			ctx := context.Background()
			if tt.mdAuthHeader != "" {
				ctx = metadata.NewIncomingContext(ctx, metadata.Pairs("authorization", tt.mdAuthHeader))
			}

			newCtx, err := m.AuthFunc(ctx)

			if tt.wantErr {
				st, ok := status.FromError(err)
				assert.True(t, ok)
				assert.Equal(t, codes.Unauthenticated, st.Code())
				assert.Nil(t, newCtx)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, newCtx)
		})
	}
}
