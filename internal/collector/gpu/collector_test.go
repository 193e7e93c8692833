package gpu

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speccle/internal/collector/chain"
	"speccle/internal/logger"
	"speccle/internal/snapshot"
)

func TestSanitizeDropsPlaceholderAdapters(t *testing.T) {
	raw := []adapter{
		{name: "NVIDIA GeForce RTX 4070", vendor: "NVIDIA", vram: 12 << 30},
		{name: "Microsoft Basic Display Adapter", vendor: "Microsoft"},
		{name: "Microsoft Basic Render Driver", vendor: "Microsoft"},
	}

	got := sanitize(raw)

	require.Len(t, got, 1)
	assert.Equal(t, "NVIDIA GeForce RTX 4070", got[0].Name)
}

func TestSanitizeClampsNegativeVRAM(t *testing.T) {
	raw := []adapter{
		{name: "Radeon RX 580", vendor: "AMD", vram: -2147483648},
	}

	got := sanitize(raw)

	require.Len(t, got, 1)
	assert.Zero(t, got[0].VRAMBytes, "negative VRAM must become the unknown value, never wrap")
}

func TestSanitizeDropsNamelessAdapters(t *testing.T) {
	got := sanitize([]adapter{{vendor: "NVIDIA", vram: 8 << 30}})
	assert.Empty(t, got)
}

func TestCollectEmptyWhenAllSourcesFail(t *testing.T) {
	c := &Collector{
		log: logger.Nop(),
		sources: []chain.Source[[]adapter]{
			{Name: "down", Probe: func(ctx context.Context) ([]adapter, error) {
				return nil, errors.New("unavailable")
			}},
		},
	}

	got := c.Collect(context.Background())
	assert.Empty(t, got)
}

func TestCollectMapsAdaptersToSnapshot(t *testing.T) {
	c := &Collector{
		log: logger.Nop(),
		sources: []chain.Source[[]adapter]{
			{Name: "fake", Probe: func(ctx context.Context) ([]adapter, error) {
				return []adapter{{name: "Arc A770", vendor: "Intel", vram: 16 << 30}}, nil
			}},
		},
	}

	got := c.Collect(context.Background())

	require.Len(t, got, 1)
	assert.Equal(t, snapshot.GPU{Name: "Arc A770", Vendor: "Intel", VRAMBytes: 16 << 30}, got[0])
}
