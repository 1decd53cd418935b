package logger_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/chessroyale/internal/logger"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logger.Level
	}{
		{"debug", logger.DEBUG},
		{"INFO", logger.INFO},
		{" warning ", logger.WARN},
		{"WARN", logger.WARN},
		{"error", logger.ERROR},
		{"nonsense", logger.INFO},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, logger.ParseLevel(tt.in), tt.in)
	}
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(logger.WARN), logger.WithColors(false))

	log.Debug("hidden")
	log.Info("hidden too")
	log.Warn("shown %d", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "shown 1")
}

func TestLogger_PrefixAndSortedFields(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(logger.DEBUG), logger.WithColors(false)).
		WithPrefix("comment_repo").
		WithFields(map[string]any{"zeta": 2, "alpha": "a"})

	log.Info("listing comments")

	line := buf.String()
	require.True(t, strings.HasSuffix(line, "\n"))
	assert.Contains(t, line, "[comment_repo]")
	assert.Contains(t, line, "listing comments alpha=a zeta=2")
}

func TestLogger_DerivedLoggersDoNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := logger.New(logger.WithOutput(&buf), logger.WithColors(false))
	_ = parent.WithField("request_id", "abc")

	parent.Info("plain")

	assert.NotContains(t, buf.String(), "request_id")
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithColors(false)).WithField("request_id", "r-1")

	ctx := logger.NewContext(context.Background(), log)
	logger.FromContext(ctx).Info("scoped")

	assert.Contains(t, buf.String(), "request_id=r-1")
	assert.Same(t, logger.Default(), logger.FromContext(context.Background()))
}
