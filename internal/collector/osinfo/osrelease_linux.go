package osinfo

import (
	"bufio"
	"context"
	"errors"
	"os"
	"strings"

	"speccle/internal/collector/chain"
	"speccle/internal/snapshot"
)

func platformSources() []chain.Source[snapshot.OS] {
	return []chain.Source[snapshot.OS]{
		{Name: "os-release", Probe: readOSRelease},
	}
}

func readOSRelease(ctx context.Context) (snapshot.OS, error) {
	f, err := os.Open("/etc/os-release")
	if err != nil {
		return snapshot.OS{}, err
	}
	defer f.Close()

	var out snapshot.OS

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "PRETTY_NAME="):
			out.Name = unquote(line, "PRETTY_NAME=")
		case strings.HasPrefix(line, "VERSION_ID="):
			out.Version = unquote(line, "VERSION_ID=")
		}
	}
	if err := scanner.Err(); err != nil {
		return snapshot.OS{}, err
	}

	if out.Name == "" {
		return snapshot.OS{}, errors.New("os-release has no PRETTY_NAME")
	}

	if b, err := os.ReadFile("/proc/sys/kernel/osrelease"); err == nil {
		out.Build = strings.TrimSpace(string(b))
	}

	return out, nil
}

func unquote(line, prefix string) string {
	return strings.Trim(strings.TrimPrefix(line, prefix), `"`)
}
