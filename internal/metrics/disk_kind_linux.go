//go:build linux

package metrics

import (
	"os"
	"path/filepath"
	"strings"
)

// sysBlockRoot is where the kernel exposes block devices.
var sysBlockRoot = "/sys/class/block"

// DiskKind reports whether the device backing a partition is rotational.
func DiskKind(device string) string {
	name := filepath.Base(device)
	if name == "" || name == "." || name == "/" {
		return DiskKindUnknown
	}

	dev, err := filepath.EvalSymlinks(filepath.Join(sysBlockRoot, name))
	if err != nil {
		return DiskKindUnknown
	}
	// Partitions carry a "partition" file; the queue lives on the parent disk.
	if _, err := os.Stat(filepath.Join(dev, "partition")); err == nil {
		dev = filepath.Dir(dev)
	}

	data, err := os.ReadFile(filepath.Join(dev, "queue", "rotational"))
	if err != nil {
		return DiskKindUnknown
	}
	switch strings.TrimSpace(string(data)) {
	case "0":
		return DiskKindSSD
	case "1":
		return DiskKindHDD
	default:
		return DiskKindUnknown
	}
}
