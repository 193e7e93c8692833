package osinfo

import (
	"context"

	"golang.org/x/sys/windows/registry"

	"speccle/internal/collector/chain"
	"speccle/internal/snapshot"
)

func platformSources() []chain.Source[snapshot.OS] {
	return []chain.Source[snapshot.OS]{
		{Name: "registry", Probe: readRegistry},
	}
}

const currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`

func readRegistry(ctx context.Context) (snapshot.OS, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, currentVersionKey, registry.QUERY_VALUE)
	if err != nil {
		return snapshot.OS{}, err
	}
	defer k.Close()

	var out snapshot.OS

	if name, _, err := k.GetStringValue("ProductName"); err == nil {
		out.Name = name
	}
	// DisplayVersion (22H2 style) replaced ReleaseId in Windows 10 20H2.
	if v, _, err := k.GetStringValue("DisplayVersion"); err == nil {
		out.Version = v
	} else if v, _, err := k.GetStringValue("ReleaseId"); err == nil {
		out.Version = v
	}
	if build, _, err := k.GetStringValue("CurrentBuildNumber"); err == nil {
		out.Build = build
	}

	return out, nil
}
