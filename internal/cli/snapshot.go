package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/sysdash/internal/config"
	"github.com/rileyhilliard/sysdash/internal/errors"
	"github.com/rileyhilliard/sysdash/internal/logger"
	"github.com/rileyhilliard/sysdash/internal/metrics"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// snapshotWarmup separates the two samples snapshot takes. CPU usage is
// measured between consecutive calls, so the first sample only primes it.
const snapshotWarmup = 500 * time.Millisecond

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print one metrics sample as YAML",
	Long: `Sample the local machine once and print everything the dashboard would
show as YAML, without entering the full-screen view.

Examples:
  sysdash snapshot
  sysdash snapshot > host.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src := metrics.NewCollector(logger.Default())
		return snapshotCommand(cmd.Context(), src, cmd.OutOrStdout(), snapshotWarmup)
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}

// snapshotCommand takes a priming sample, waits warmup, then writes the
// second sample to w.
func snapshotCommand(ctx context.Context, src metrics.Source, w io.Writer, warmup time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}
	timeout := config.DefaultConfig().Timing.SampleTimeout

	if warmup > 0 {
		if _, err := refreshWithTimeout(ctx, src, timeout); err != nil {
			return err
		}
		select {
		case <-time.After(warmup):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	snap, err := refreshWithTimeout(ctx, src, timeout)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "# %s\n", summarize(snap))

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Couldn't encode the snapshot",
			"This is a bug; please report it.")
	}
	return enc.Close()
}

func refreshWithTimeout(ctx context.Context, src metrics.Source, timeout time.Duration) (*metrics.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	snap, err := src.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, errors.New(errors.ErrMetrics, "Metrics source returned no snapshot", "")
	}
	return snap, nil
}

// summarize describes a snapshot in one human-readable line.
func summarize(snap *metrics.Snapshot) string {
	host := snap.Host.Hostname
	if host == "" {
		host = "unknown host"
	}
	return fmt.Sprintf("%s: %d cores, %s memory, %s disks, %s processes",
		host,
		len(snap.CPU.Cores),
		humanize.Bytes(snap.Memory.TotalBytes),
		humanize.Comma(int64(len(snap.Disks))),
		humanize.Comma(int64(len(snap.Processes))),
	)
}
