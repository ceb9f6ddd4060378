package rpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"

	"github.com/zulezhe/env-manager/internal/model"
)

func TestCodec_Registered(t *testing.T) {
	codec := encoding.GetCodec(CodecName)
	require.NotNil(t, codec)
	assert.Equal(t, "json", codec.Name())
}

func TestCodec_VariableScopeTag(t *testing.T) {
	data, err := Codec{}.Marshal(&VariableResponse{Variable: model.EnvironmentVariable{
		ID: "system_JAVA_HOME", Name: "JAVA_HOME", Value: `C:\jdk`, Scope: model.ScopeSystem, IsValid: true,
	}})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"system"`)

	var out VariableResponse
	require.NoError(t, Codec{}.Unmarshal(data, &out))
	assert.Equal(t, model.ScopeSystem, out.Variable.Scope)
}

func TestCodec_Unmarshal(t *testing.T) {
	t.Run("empty payload", func(t *testing.T) {
		var in Empty
		assert.NoError(t, Codec{}.Unmarshal(nil, &in))
	})

	t.Run("unknown scope in variable", func(t *testing.T) {
		var out VariableResponse
		err := Codec{}.Unmarshal([]byte(`{"variable":{"type":"machine"}}`), &out)
		assert.ErrorIs(t, err, model.ErrInvalidScope)
	})

	t.Run("malformed", func(t *testing.T) {
		var in GetRequest
		assert.Error(t, Codec{}.Unmarshal([]byte(`{`), &in))
	})
}
