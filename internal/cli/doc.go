// Package cli implements the sysdash command-line interface.
//
// The package is organized around Cobra commands. Running the root command
// with no arguments starts the dashboard; everything else is a subcommand:
//
//	sysdash             - Full-screen dashboard (q, Esc or Ctrl+C to quit)
//	sysdash snapshot    - One sample printed as YAML
//	sysdash config      - The compiled-in settings as YAML
//	sysdash version     - Version and build information
//
// The dashboard takes no flags, reads no config file and no environment
// variables. Errors are returned as structured errors and printed by Execute
// after the terminal has been restored.
package cli
