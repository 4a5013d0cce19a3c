package cli

import (
	"io"

	"github.com/rileyhilliard/sysdash/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the compiled-in settings",
	Long: `Print the thresholds, timing and layout settings sysdash was built with,
as YAML. sysdash reads no config file or environment variables; these values
are fixed at build time.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configCommand(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func configCommand(w io.Writer) error {
	cfg := config.DefaultConfig()
	if err := config.Validate(cfg); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
