package memory

import (
	"bufio"
	"context"
	"os"
	"strconv"
	"strings"

	"speccle/internal/collector/chain"
	"speccle/internal/snapshot"
)

func platformSources() []chain.Source[snapshot.Memory] {
	return []chain.Source[snapshot.Memory]{
		{Name: "procfs", Probe: readMemInfo},
	}
}

func readMemInfo(ctx context.Context) (snapshot.Memory, error) {
	var out snapshot.Memory

	file, err := os.Open("/proc/meminfo")
	if err != nil {
		return out, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}

		key := strings.TrimSuffix(fields[0], ":")
		valueKB, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}

		switch key {
		case "MemTotal":
			out.TotalBytes = valueKB * 1024
		case "MemAvailable":
			out.AvailableBytes = valueKB * 1024
		}
	}

	if err := scanner.Err(); err != nil {
		return out, err
	}

	return out, nil
}
