package logger

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	log := NewLogger("test-role")
	require.NotNil(t, log)

	// must not panic and must honour the global debug level
	log.Debug().Msg("debug message")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)
	log.Error().Msg("should go nowhere")
}

func TestGetChildLogger(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()
	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_NoAttachedLogger(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
	log.Info().Msg("global fallback")
}

func TestFromContext_AttachedLogger(t *testing.T) {
	base := Nop()
	ctx := base.WithContext(context.Background())

	got := FromContext(ctx)
	require.NotNil(t, got)
	got.Info().Msg("from context")
}
