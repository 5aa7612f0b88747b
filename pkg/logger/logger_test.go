package logger_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"studymate/pkg/logger"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		env     logger.Environment
		level   string
		wantErr bool
	}{
		{name: "development default level", env: logger.Development},
		{name: "production with level", env: logger.Production, level: "warn"},
		{name: "level is case insensitive", env: logger.Development, level: "DEBUG"},
		{name: "unknown level", env: logger.Development, level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.NewLogger(tt.env, tt.level)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, l)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, l)
			assert.NotPanics(t, func() {
				l.With(zap.String("k", "v")).Info(context.Background(), "hello")
			})
		})
	}
}

func TestContextLookup(t *testing.T) {
	l := logger.NewNop()

	t.Run("logger stored in context is returned", func(t *testing.T) {
		ctx := logger.NewContext(context.Background(), l)
		got, err := logger.FromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, l, got)
		assert.Same(t, l, logger.Log(ctx))
	})

	t.Run("missing logger", func(t *testing.T) {
		_, err := logger.FromContext(context.Background())
		require.ErrorIs(t, err, logger.ErrLoggerNotFound)
		assert.NotNil(t, logger.Log(context.Background()))
	})

	t.Run("global logger is used as fallback", func(t *testing.T) {
		logger.SetGlobalLogger(l)
		t.Cleanup(func() { logger.SetGlobalLogger(nil) })
		assert.Same(t, l, logger.Log(context.Background()))
	})
}

func TestRequestID(t *testing.T) {
	ctx := logger.NewRequestIDContext(context.Background(), " req-1 ")
	id, ok := logger.GetRequestID(ctx)
	require.True(t, ok)
	assert.Equal(t, "req-1", id)

	generated := logger.NewRequestIDContext(context.Background(), "")
	id, ok = logger.GetRequestID(generated)
	require.True(t, ok)
	assert.Len(t, id, 36)

	_, ok = logger.GetRequestID(context.Background())
	assert.False(t, ok)
}

func TestParseRequestID(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{"plain", "req-1", "req-1", true},
		{"trimmed", "  abc  ", "abc", true},
		{"empty", "", "", false},
		{"inner space", "a b", "", false},
		{"control character", "a\nb", "", false},
		{"non ascii", "запрос", "", false},
		{"too long", strings.Repeat("a", logger.MaxRequestIDLength+1), "", false},
		{"max length", strings.Repeat("a", logger.MaxRequestIDLength), strings.Repeat("a", logger.MaxRequestIDLength), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := logger.ParseRequestID(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRequestIDContext_ReplacesInvalidHeader(t *testing.T) {
	ctx := logger.NewRequestIDContext(context.Background(), strings.Repeat("x", logger.MaxRequestIDLength+1))

	id, ok := logger.GetRequestID(ctx)
	require.True(t, ok)
	assert.Len(t, id, 36)
}
