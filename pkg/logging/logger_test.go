package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "default", cfg: NewDefaultConfig()},
		{name: "json debug", cfg: Config{Level: "debug", Format: "json"}},
		{name: "bad level", cfg: Config{Level: "loud", Format: "console"}, wantErr: true},
		{name: "bad format", cfg: Config{Level: "info", Format: "xml"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNew(t *testing.T) {
	l, err := New(Config{Level: "warn", Format: "json"})
	require.NoError(t, err)
	assert.True(t, l.Zap().Core().Enabled(zapcore.WarnLevel))
	assert.False(t, l.Zap().Core().Enabled(zapcore.InfoLevel))

	_, err = New(Config{Level: "nope", Format: "json"})
	assert.Error(t, err)
}

func TestContextFieldsAreAttached(t *testing.T) {
	tl := NewTestLogger()
	ctx := ContextWithFields(context.Background(), zap.String("surface", "cli"))

	tl.Named("journal").Info(ctx, "saved", zap.Int("count", 2))

	entries := tl.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "journal", entries[0].LoggerName)
	fields := entries[0].ContextMap()
	assert.Equal(t, "cli", fields["surface"])
	assert.EqualValues(t, 2, fields["count"])
}

func TestContextFieldsDoNotLeakBetweenCalls(t *testing.T) {
	ctx := ContextWithFields(context.Background(), zap.String("a", "1"))
	first := ContextFields(ctx)
	first[0] = zap.String("a", "changed")

	assert.Equal(t, "1", ContextFields(ctx)[0].String)
	assert.Nil(t, ContextFields(context.Background()))
}

func TestNopLogger(t *testing.T) {
	l := NewNop()
	l.Error(context.Background(), "ignored")
	assert.NoError(t, l.With(zap.String("k", "v")).Sync())
}
