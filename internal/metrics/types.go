package metrics

import "time"

// Snapshot contains all metrics sampled from the local host at one instant.
// It is never modified after the Source returns it.
type Snapshot struct {
	Timestamp time.Time     `yaml:"timestamp"`
	CPU       CPUMetrics    `yaml:"cpu"`
	Memory    MemoryMetrics `yaml:"memory"`
	Swap      SwapMetrics   `yaml:"swap"`
	Disks     []Disk        `yaml:"disks"`
	Host      HostInfo      `yaml:"host"`
	Processes []Process     `yaml:"processes"`
}

// CPUMetrics contains global and per-core CPU usage.
type CPUMetrics struct {
	GlobalPercent float64     `yaml:"global_percent"`
	Cores         []CoreUsage `yaml:"cores"`
}

// CoreUsage is the usage of one logical core.
type CoreUsage struct {
	Label   string  `yaml:"label"`
	Percent float64 `yaml:"percent"`
}

// MemoryMetrics contains physical memory usage. Used + Available need not add
// up to Total; the OS reports overlapping figures.
type MemoryMetrics struct {
	TotalBytes     uint64 `yaml:"total_bytes"`
	UsedBytes      uint64 `yaml:"used_bytes"`
	AvailableBytes uint64 `yaml:"available_bytes"`
	FreeBytes      uint64 `yaml:"free_bytes"`
}

// UsedPercent recomputes the usage percentage from the byte counts.
func (m MemoryMetrics) UsedPercent() float64 {
	return Percent(m.UsedBytes, m.TotalBytes)
}

// SwapMetrics contains swap usage.
type SwapMetrics struct {
	TotalBytes uint64 `yaml:"total_bytes"`
	UsedBytes  uint64 `yaml:"used_bytes"`
	FreeBytes  uint64 `yaml:"free_bytes"`
}

// UsedPercent recomputes the usage percentage. Hosts without swap report 0.
func (s SwapMetrics) UsedPercent() float64 {
	return Percent(s.UsedBytes, s.TotalBytes)
}

// Disk describes one mounted filesystem.
type Disk struct {
	Name           string `yaml:"name"`
	MountPoint     string `yaml:"mount_point"`
	Filesystem     string `yaml:"filesystem"`
	Kind           string `yaml:"kind"`
	TotalBytes     uint64 `yaml:"total_bytes"`
	AvailableBytes uint64 `yaml:"available_bytes"`
}

// UsedBytes is the capacity not available to unprivileged users.
func (d Disk) UsedBytes() uint64 {
	if d.AvailableBytes > d.TotalBytes {
		return 0
	}
	return d.TotalBytes - d.AvailableBytes
}

// UsedPercent recomputes the usage percentage from the byte counts.
func (d Disk) UsedPercent() float64 {
	return Percent(d.UsedBytes(), d.TotalBytes)
}

// Disk kinds as reported by DiskKind.
const (
	DiskKindSSD     = "SSD"
	DiskKindHDD     = "HDD"
	DiskKindUnknown = "Unknown"
)

// HostInfo contains general system information.
type HostInfo struct {
	Hostname      string `yaml:"hostname"`
	OSName        string `yaml:"os_name"`
	OSVersion     string `yaml:"os_version"`
	CPUArch       string `yaml:"cpu_arch,omitempty"` // empty when the OS doesn't report it
	UptimeSeconds uint64 `yaml:"uptime_seconds"`
}

// Process is one entry of the process list.
type Process struct {
	PID           uint32        `yaml:"pid"`
	Name          string        `yaml:"name"`
	MemoryBytes   uint64        `yaml:"memory_bytes"`
	CPUPercent    float64       `yaml:"cpu_percent"`
	UptimeSeconds uint64        `yaml:"uptime_seconds"`
	Owner         *ProcessOwner `yaml:"owner,omitempty"` // nil when the OS hides it
}

// ProcessOwner is the effective user and group of a process.
type ProcessOwner struct {
	EUID uint32 `yaml:"euid"`
	EGID uint32 `yaml:"egid"`
}
