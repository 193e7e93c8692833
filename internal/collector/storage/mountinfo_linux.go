package storage

import (
	"bufio"
	"context"
	"errors"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"speccle/internal/collector/chain"
)

func platformSources() []chain.Source[[]mount] {
	return []chain.Source[[]mount]{
		{Name: "mountinfo", Probe: readMountInfo},
	}
}

// readMountInfo walks /proc/self/mountinfo and sizes each real-device
// mount with statfs. Secondary source for when the primary cannot
// enumerate partitions.
func readMountInfo(ctx context.Context) ([]mount, error) {
	f, err := os.Open("/proc/self/mountinfo")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seen := make(map[string]bool)
	var out []mount

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 10 {
			continue
		}

		mountpoint := fields[4]
		// The source device sits after the optional-fields separator.
		sep := -1
		for i := 6; i < len(fields); i++ {
			if fields[i] == "-" {
				sep = i
				break
			}
		}
		if sep < 0 || sep+2 >= len(fields) {
			continue
		}
		fstype := fields[sep+1]
		source := fields[sep+2]

		if !strings.HasPrefix(source, "/dev/") || seen[mountpoint] {
			continue
		}
		seen[mountpoint] = true

		var st unix.Statfs_t
		if err := unix.Statfs(mountpoint, &st); err != nil {
			continue
		}

		bsize := uint64(st.Bsize)
		out = append(out, mount{
			mountpoint: mountpoint,
			device:     strings.SplitN(source, "[", 2)[0],
			fstype:     fstype,
			total:      st.Blocks * bsize,
			free:       st.Bfree * bsize,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, errors.New("no device-backed mounts")
	}
	return out, nil
}
