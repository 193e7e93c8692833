package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speccle/internal/logger"
)

func TestResolveFirstSourceWins(t *testing.T) {
	sources := []Source[int]{
		{Name: "primary", Probe: func(ctx context.Context) (int, error) { return 1, nil }},
		{Name: "secondary", Probe: func(ctx context.Context) (int, error) {
			t.Fatal("secondary must not be probed when primary succeeds")
			return 0, nil
		}},
	}

	val, ok := Resolve(context.Background(), logger.Nop(), "test", sources, nil)
	require.True(t, ok)
	assert.Equal(t, 1, val)
}

func TestResolveFallsThroughOnError(t *testing.T) {
	sources := []Source[string]{
		{Name: "primary", Probe: func(ctx context.Context) (string, error) { return "", errors.New("unavailable") }},
		{Name: "secondary", Probe: func(ctx context.Context) (string, error) { return "value", nil }},
	}

	val, ok := Resolve(context.Background(), logger.Nop(), "test", sources, nil)
	require.True(t, ok)
	assert.Equal(t, "value", val)
}

func TestResolveFallsThroughOnInvalidValue(t *testing.T) {
	sources := []Source[int]{
		{Name: "primary", Probe: func(ctx context.Context) (int, error) { return -5, nil }},
		{Name: "secondary", Probe: func(ctx context.Context) (int, error) { return 7, nil }},
	}

	val, ok := Resolve(context.Background(), logger.Nop(), "test", sources, func(n int) bool { return n >= 0 })
	require.True(t, ok)
	assert.Equal(t, 7, val)
}

func TestResolveExhaustionReturnsZero(t *testing.T) {
	sources := []Source[int]{
		{Name: "a", Probe: func(ctx context.Context) (int, error) { return 0, errors.New("down") }},
		{Name: "b", Probe: func(ctx context.Context) (int, error) { return 0, errors.New("also down") }},
	}

	val, ok := Resolve(context.Background(), logger.Nop(), "test", sources, nil)
	assert.False(t, ok)
	assert.Zero(t, val)
}

func TestResolveAbsorbsPanickingSource(t *testing.T) {
	sources := []Source[int]{
		{Name: "broken", Probe: func(ctx context.Context) (int, error) { panic("boom") }},
		{Name: "working", Probe: func(ctx context.Context) (int, error) { return 42, nil }},
	}

	val, ok := Resolve(context.Background(), logger.Nop(), "test", sources, nil)
	require.True(t, ok)
	assert.Equal(t, 42, val)
}

func TestResolveStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sources := []Source[int]{
		{Name: "primary", Probe: func(ctx context.Context) (int, error) {
			t.Fatal("must not probe after cancellation")
			return 0, nil
		}},
	}

	_, ok := Resolve(ctx, logger.Nop(), "test", sources, nil)
	assert.False(t, ok)
}
