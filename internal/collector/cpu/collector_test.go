package cpu

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"speccle/internal/collector/chain"
	"speccle/internal/logger"
	"speccle/internal/snapshot"
)

func TestCollectPrimaryValuesPassThrough(t *testing.T) {
	fallbackProbed := false
	c := &Collector{
		log: logger.Nop(),
		sources: []chain.Source[snapshot.CPU]{
			{Name: "primary", Probe: func(ctx context.Context) (snapshot.CPU, error) {
				return snapshot.CPU{
					Model:          "Ryzen 9 7950X",
					Manufacturer:   "AMD",
					PhysicalCores:  16,
					LogicalThreads: 32,
					ClockGHz:       4.5,
				}, nil
			}},
			{Name: "fallback", Probe: func(ctx context.Context) (snapshot.CPU, error) {
				fallbackProbed = true
				return snapshot.CPU{}, nil
			}},
		},
	}

	got := c.Collect(context.Background())

	assert.Equal(t, 16, got.PhysicalCores)
	assert.Equal(t, 32, got.LogicalThreads)
	assert.Equal(t, 4.5, got.ClockGHz)
	assert.Equal(t, "Ryzen 9 7950X", got.Model)
	assert.False(t, fallbackProbed, "fallback must not run when primary succeeds")
}

func TestCollectAllSourcesFailYieldsSentinel(t *testing.T) {
	c := &Collector{
		log: logger.Nop(),
		sources: []chain.Source[snapshot.CPU]{
			{Name: "a", Probe: func(ctx context.Context) (snapshot.CPU, error) {
				return snapshot.CPU{}, errors.New("unavailable")
			}},
		},
	}

	got := c.Collect(context.Background())

	assert.Equal(t, snapshot.Unknown, got.Model)
	assert.Equal(t, snapshot.Unknown, got.Manufacturer)
	assert.Zero(t, got.PhysicalCores)
	assert.Zero(t, got.LogicalThreads)
}

func TestSanitizeClampsNegatives(t *testing.T) {
	got := sanitize(snapshot.CPU{Model: "x", PhysicalCores: -1, LogicalThreads: -2, ClockGHz: -3.5})

	assert.Zero(t, got.PhysicalCores)
	assert.Zero(t, got.LogicalThreads)
	assert.Zero(t, got.ClockGHz)
}

func TestReadRuntimeReportsThreads(t *testing.T) {
	got, err := readRuntime(context.Background())

	assert.NoError(t, err)
	assert.Greater(t, got.LogicalThreads, 0)
	assert.GreaterOrEqual(t, got.LogicalThreads, got.PhysicalCores)
}
