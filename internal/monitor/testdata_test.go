package monitor

import (
	"time"

	"github.com/rileyhilliard/sysdash/internal/metrics"
)

// idleSnapshot is the four-core idle host with no swap.
func idleSnapshot() *metrics.Snapshot {
	return &metrics.Snapshot{
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		CPU: metrics.CPUMetrics{
			Cores: []metrics.CoreUsage{
				{Label: "0"}, {Label: "1"}, {Label: "2"}, {Label: "3"},
			},
		},
		Memory: metrics.MemoryMetrics{TotalBytes: 8_000_000_000},
	}
}

// busySnapshot exercises every panel.
func busySnapshot() *metrics.Snapshot {
	return &metrics.Snapshot{
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		CPU: metrics.CPUMetrics{
			GlobalPercent: 42.5,
			Cores: []metrics.CoreUsage{
				{Label: "0", Percent: 12},
				{Label: "1", Percent: 55},
				{Label: "2", Percent: 80},
				{Label: "3", Percent: 100},
			},
		},
		Memory: metrics.MemoryMetrics{
			TotalBytes:     16_000_000_000,
			UsedBytes:      9_000_000_000,
			AvailableBytes: 7_000_000_000,
			FreeBytes:      734_000_000,
		},
		Swap: metrics.SwapMetrics{
			TotalBytes: 2_000_000_000,
			UsedBytes:  500_000_000,
			FreeBytes:  1_500_000_000,
		},
		Disks: []metrics.Disk{
			{
				Name:           "nvme0n1p2",
				MountPoint:     "/",
				Filesystem:     "ext4",
				Kind:           metrics.DiskKindSSD,
				TotalBytes:     500_000_000_000,
				AvailableBytes: 100_000_000_000,
			},
		},
		Host: metrics.HostInfo{
			Hostname:      "devbox",
			OSName:        "Ubuntu",
			OSVersion:     "24.04",
			UptimeSeconds: 86400,
		},
		Processes: []metrics.Process{
			{PID: 10, Name: "small", MemoryBytes: 40_000_000},
			{PID: 11, Name: "browser", MemoryBytes: 60_000_000, CPUPercent: 3.5, UptimeSeconds: 120},
			{PID: 12, Name: "com.example.verylongprocessname", MemoryBytes: 200_000_000, Owner: &metrics.ProcessOwner{EUID: 1000, EGID: 1000}},
			{PID: 13, Name: "exactly-fifty", MemoryBytes: 50_000_000},
		},
	}
}
