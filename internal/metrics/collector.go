package metrics

import (
	"context"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rileyhilliard/sysdash/internal/errors"
	"github.com/rileyhilliard/sysdash/internal/logger"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// Collector gathers metrics from the local host using gopsutil.
//
// CPU percentages are computed by gopsutil against the previous call, so the
// first snapshot after start-up reports usage since boot.
type Collector struct {
	log logger.Logger
	now func() time.Time
}

// NewCollector creates a collector that logs skipped items to log.
func NewCollector(log logger.Logger) *Collector {
	if log == nil {
		log = logger.Noop()
	}
	return &Collector{
		log: log,
		now: time.Now,
	}
}

// Refresh samples the host. CPU, memory, swap and host failures are fatal;
// a disk or process that can't be read is skipped.
// Once ctx is done, Refresh returns at the next read.
func (c *Collector) Refresh(ctx context.Context) (*Snapshot, error) {
	if err := interrupted(ctx); err != nil {
		return nil, err
	}
	snap := &Snapshot{Timestamp: c.now()}

	global, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrMetrics,
			"Couldn't read CPU usage",
			"Check that the process can read CPU statistics (/proc/stat on Linux).")
	}
	if len(global) > 0 {
		snap.CPU.GlobalPercent = global[0]
	}

	perCore, err := cpu.PercentWithContext(ctx, 0, true)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrMetrics,
			"Couldn't read per-core CPU usage",
			"Check that the process can read CPU statistics (/proc/stat on Linux).")
	}
	snap.CPU.Cores = coreUsage(perCore)

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrMetrics,
			"Couldn't read memory statistics",
			"Check that the process can read /proc/meminfo (Linux) or vm_stat (macOS).")
	}
	snap.Memory = MemoryMetrics{
		TotalBytes:     vm.Total,
		UsedBytes:      vm.Used,
		AvailableBytes: vm.Available,
		FreeBytes:      vm.Free,
	}

	swap, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrMetrics,
			"Couldn't read swap statistics",
			"Check that the process can read swap information.")
	}
	snap.Swap = SwapMetrics{
		TotalBytes: swap.Total,
		UsedBytes:  swap.Used,
		FreeBytes:  swap.Free,
	}

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrMetrics,
			"Couldn't read host information",
			"Check that the process can read the hostname and uptime.")
	}
	snap.Host = hostInfo(info)

	if snap.Disks, err = c.collectDisks(ctx); err != nil {
		return nil, err
	}
	if snap.Processes, err = c.collectProcesses(ctx, snap.Timestamp); err != nil {
		return nil, err
	}

	return snap, nil
}

// interrupted returns a METRICS error once ctx is done.
func interrupted(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.WrapWithCode(err, errors.ErrMetrics,
			"Sampling host metrics was interrupted",
			"The sample was cancelled or ran past its deadline.")
	}
	return nil
}

// collectDisks lists physical partitions in the order the OS reports them.
// It only fails when ctx is done.
func (c *Collector) collectDisks(ctx context.Context) ([]Disk, error) {
	if err := interrupted(ctx); err != nil {
		return nil, err
	}
	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		c.log.Warn("listing partitions failed, showing no disks: %v", err)
		return []Disk{}, nil
	}

	disks := make([]Disk, 0, len(partitions))
	for _, part := range partitions {
		if err := interrupted(ctx); err != nil {
			return nil, err
		}
		usage, err := disk.UsageWithContext(ctx, part.Mountpoint)
		if err != nil {
			c.log.Debug("skipping disk %s at %s: %v", part.Device, part.Mountpoint, err)
			continue
		}
		disks = append(disks, toDisk(part, usage, DiskKind(part.Device)))
	}
	return disks, nil
}

// collectProcesses reads every process it can. Processes that exit mid-scan
// or hide their details are skipped. It only fails when ctx is done.
func (c *Collector) collectProcesses(ctx context.Context, now time.Time) ([]Process, error) {
	if err := interrupted(ctx); err != nil {
		return nil, err
	}
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		c.log.Warn("listing processes failed, showing none: %v", err)
		return []Process{}, nil
	}

	out := make([]Process, 0, len(procs))
	skipped := 0
	for _, p := range procs {
		if err := interrupted(ctx); err != nil {
			c.log.Debug("process scan interrupted after %d of %d", len(out)+skipped, len(procs))
			return nil, err
		}
		proc, err := readProcess(ctx, p, now)
		if err != nil {
			skipped++
			continue
		}
		out = append(out, proc)
	}
	if skipped > 0 {
		c.log.Debug("skipped %d of %d processes", skipped, len(procs))
	}
	return out, nil
}

func readProcess(ctx context.Context, p *process.Process, now time.Time) (Process, error) {
	name, err := p.NameWithContext(ctx)
	if err != nil {
		return Process{}, err
	}
	memInfo, err := p.MemoryInfoWithContext(ctx)
	if err != nil {
		return Process{}, err
	}

	proc := Process{
		PID:         uint32(p.Pid),
		Name:        name,
		MemoryBytes: memInfo.RSS,
	}

	// The remaining fields are best effort.
	if pct, err := p.CPUPercentWithContext(ctx); err == nil {
		proc.CPUPercent = pct
	}
	if created, err := p.CreateTimeWithContext(ctx); err == nil {
		proc.UptimeSeconds = processUptime(created, now)
	}
	uids, uidErr := p.UidsWithContext(ctx)
	gids, gidErr := p.GidsWithContext(ctx)
	if uidErr == nil && gidErr == nil {
		proc.Owner = processOwner(uids, gids)
	}

	return proc, nil
}

// coreUsage labels per-core percentages with their index.
func coreUsage(percents []float64) []CoreUsage {
	cores := make([]CoreUsage, len(percents))
	for i, pct := range percents {
		cores[i] = CoreUsage{Label: strconv.Itoa(i), Percent: pct}
	}
	return cores
}

func hostInfo(info *host.InfoStat) HostInfo {
	name := info.Platform
	if name == "" {
		name = info.OS
	}
	return HostInfo{
		Hostname:      info.Hostname,
		OSName:        name,
		OSVersion:     info.PlatformVersion,
		CPUArch:       info.KernelArch,
		UptimeSeconds: info.Uptime,
	}
}

func toDisk(part disk.PartitionStat, usage *disk.UsageStat, kind string) Disk {
	return Disk{
		Name:           filepath.Base(part.Device),
		MountPoint:     part.Mountpoint,
		Filesystem:     part.Fstype,
		Kind:           kind,
		TotalBytes:     usage.Total,
		AvailableBytes: usage.Free,
	}
}

// processUptime converts a creation time in epoch milliseconds to seconds alive.
func processUptime(createdMillis int64, now time.Time) uint64 {
	elapsed := now.UnixMilli() - createdMillis
	if createdMillis <= 0 || elapsed <= 0 {
		return 0
	}
	return uint64(elapsed / 1000)
}

// processOwner picks the effective IDs. gopsutil returns real, effective,
// saved and filesystem IDs, in that order, where the OS provides them.
func processOwner(uids, gids []uint32) *ProcessOwner {
	euid, ok := effectiveID(uids)
	if !ok {
		return nil
	}
	egid, ok := effectiveID(gids)
	if !ok {
		return nil
	}
	return &ProcessOwner{EUID: euid, EGID: egid}
}

func effectiveID(ids []uint32) (uint32, bool) {
	switch len(ids) {
	case 0:
		return 0, false
	case 1:
		return ids[0], true
	default:
		return ids[1], true
	}
}
