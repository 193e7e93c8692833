// Package system
package system

import (
	"context"
	"errors"
	"os"

	"github.com/shirou/gopsutil/v4/host"

	"speccle/internal/collector/chain"
	"speccle/internal/logger"
	"speccle/internal/snapshot"
)

type Collector struct {
	log     logger.Logger
	sources []chain.Source[string]
}

func NewCollector(log logger.Logger) *Collector {
	return &Collector{
		log: log,
		sources: []chain.Source[string]{
			{Name: "os", Probe: readHostname},
			{Name: "gopsutil", Probe: readHostInfo},
			{Name: "env", Probe: readEnv},
		},
	}
}

func (c *Collector) Collect(ctx context.Context) string {
	name, ok := chain.Resolve(ctx, c.log, "hostname", c.sources, func(s string) bool { return s != "" })
	if !ok {
		return snapshot.Unknown
	}
	return name
}

func readHostname(ctx context.Context) (string, error) {
	return os.Hostname()
}

func readHostInfo(ctx context.Context) (string, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return "", err
	}
	return info.Hostname, nil
}

func readEnv(ctx context.Context) (string, error) {
	for _, key := range []string{"COMPUTERNAME", "HOSTNAME"} {
		if v := os.Getenv(key); v != "" {
			return v, nil
		}
	}
	return "", errors.New("no hostname in environment")
}
