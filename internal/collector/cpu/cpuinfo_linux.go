package cpu

import (
	"bufio"
	"context"
	"os"
	"strconv"
	"strings"

	"speccle/internal/collector/chain"
	"speccle/internal/snapshot"
)

func platformSources() []chain.Source[snapshot.CPU] {
	return []chain.Source[snapshot.CPU]{
		{Name: "procfs", Probe: readCPUInfo},
	}
}

// readCPUInfo parses /proc/cpuinfo directly, for systems where the
// primary source cannot (containers with restricted mounts, unusual
// architectures).
func readCPUInfo(ctx context.Context) (snapshot.CPU, error) {
	var out snapshot.CPU

	file, err := os.Open("/proc/cpuinfo")
	if err != nil {
		return out, err
	}
	defer file.Close()

	seenModel := false
	processors := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "processor":
			processors++

		case "vendor_id":
			out.Manufacturer = value

		case "model name":
			if !seenModel {
				out.Model = value
				seenModel = true
			}

		case "cpu cores":
			if n, err := strconv.Atoi(value); err == nil {
				out.PhysicalCores = n
			}

		case "cpu MHz":
			if out.ClockGHz == 0 {
				if mhz, err := strconv.ParseFloat(value, 64); err == nil {
					out.ClockGHz = mhz / 1000
				}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return out, err
	}

	out.LogicalThreads = processors
	if out.PhysicalCores == 0 {
		out.PhysicalCores = processors
	}

	// cpuinfo reports the current clock; the sysfs maximum is the
	// advertised speed when available.
	if maxGHz := readMaxFreqGHz(); maxGHz > 0 {
		out.ClockGHz = maxGHz
	}

	return out, nil
}

func readMaxFreqGHz() float64 {
	data, err := os.ReadFile("/sys/devices/system/cpu/cpu0/cpufreq/cpuinfo_max_freq")
	if err != nil {
		return 0
	}
	khz, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return float64(khz) / 1e6
}
