package storage

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

func TestCollectEmptyWhenNothingAccessible(t *testing.T) {
	c := &Collector{
		log: logger.Nop(),
		sources: []chain.Source[[]mount]{
			{Name: "down", Probe: func(ctx context.Context) ([]mount, error) {
				return nil, errors.New("no accessible partitions")
			}},
		},
	}

	got := c.Collect(context.Background())
	assert.Empty(t, got)
}

func TestCollectClampsFreeToTotal(t *testing.T) {
	c := &Collector{
		log: logger.Nop(),
		sources: []chain.Source[[]mount]{
			{Name: "fake", Probe: func(ctx context.Context) ([]mount, error) {
				return []mount{
					{mountpoint: "/", device: "/dev/fake1", fstype: "ext4", total: 100, free: 150},
					{mountpoint: "/home", device: "/dev/fake2", fstype: "ext4", total: 500, free: 200},
				}, nil
			}},
		},
	}

	got := c.Collect(context.Background())

	require.Len(t, got, 2)
	for _, d := range got {
		assert.LessOrEqual(t, d.FreeBytes, d.TotalBytes)
	}
	assert.Equal(t, "/", got[0].Mount)
	assert.Equal(t, uint64(100), got[0].FreeBytes)
}

func TestCollectUnclassifiedDevicesGetUnknownType(t *testing.T) {
	c := &Collector{
		log: logger.Nop(),
		sources: []chain.Source[[]mount]{
			{Name: "fake", Probe: func(ctx context.Context) ([]mount, error) {
				return []mount{{mountpoint: "/mnt/x", device: "/dev/does-not-exist", fstype: "ext4", total: 10, free: 5}}, nil
			}},
		},
	}

	got := c.Collect(context.Background())

	require.Len(t, got, 1)
	assert.Equal(t, snapshot.DriveUnknown, got[0].Type)
}

func TestSkipPartition(t *testing.T) {
	assert.True(t, skipPartition("", nil))
	assert.True(t, skipPartition("iso9660", []string{"ro", "cdrom"}))
	assert.False(t, skipPartition("ext4", []string{"rw"}))
}
