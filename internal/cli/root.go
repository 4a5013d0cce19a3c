package cli

import (
	"os"

	"github.com/rileyhilliard/sysdash/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// rootCmd starts the dashboard when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "sysdash",
	Short: "Live terminal dashboard for this machine",
	Long: `sysdash shows CPU, memory, swap, disk, host and process information for
the local machine in a full-screen terminal dashboard, refreshed about once a
second. Usage values are colored green, yellow or red by severity.

Press q, Esc or Ctrl+C to quit.

Examples:
  sysdash
  sysdash snapshot > host.yaml
  sysdash config`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(os.Stdin, os.Stdout)
	},
}

// Execute runs the root command and exits non-zero on failure. The dashboard
// has already restored the terminal by the time an error reaches here.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !term.IsTerminal(int(os.Stderr.Fd())) {
			ui.DisableColors()
		}
		ui.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
