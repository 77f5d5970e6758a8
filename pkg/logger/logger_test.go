package logger

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestWithContextFallsBackToGlobal(t *testing.T) {
	assert.Same(t, Get(), WithContext(context.Background()))

	l := WithRequestID("req-1")
	ctx := NewContext(context.Background(), &l)
	assert.Same(t, &l, WithContext(ctx))
}
