package cli

import (
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/sysdash/internal/config"
	"github.com/rileyhilliard/sysdash/internal/errors"
	"github.com/rileyhilliard/sysdash/internal/logger"
	"github.com/rileyhilliard/sysdash/internal/metrics"
	"github.com/rileyhilliard/sysdash/internal/monitor"
	"github.com/rileyhilliard/sysdash/internal/ui"
	"golang.org/x/term"
)

// debugLogging turns on debug lines in the dashboard log file.
const debugLogging = false

// dashboardCommand runs the full-screen dashboard until the user quits or a
// sample fails. Bubble Tea owns raw mode and the alternate screen and
// releases both before Run returns, on every path.
func dashboardCommand(in, out *os.File) error {
	if !term.IsTerminal(int(in.Fd())) || !term.IsTerminal(int(out.Fd())) {
		return errors.New(errors.ErrTerminal,
			"sysdash needs an interactive terminal",
			"Run it directly in a terminal, or use 'sysdash snapshot' for scripted output.")
	}

	cfg := config.DefaultConfig()
	if err := config.Validate(cfg); err != nil {
		return err
	}

	width, height, err := term.GetSize(int(out.Fd()))
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"Couldn't read the terminal size",
			"Make sure sysdash is attached to a real terminal.")
	}

	logFile := openLog()
	if logFile != nil {
		defer logFile.Close()
	} else {
		ui.PrintWarning(os.Stderr, "Couldn't open the log file; dashboard logging is off")
	}
	lg := logger.NewStdLogger("", debugLogging)
	logger.SetDefault(lg)
	lg.Info("starting dashboard at %dx%d, refreshing every %s",
		width, height, cfg.Timing.RefreshInterval())

	model := monitor.NewModel(metrics.NewCollector(lg), cfg, lg).WithSize(width, height)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := p.Run()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"Terminal I/O failed",
			"The terminal may have been closed. Start sysdash again.")
	}

	if m, ok := final.(monitor.Model); ok && m.Err() != nil {
		return m.Err()
	}
	lg.Info("dashboard stopped")
	return nil
}

// openLog points the standard logger at the sysdash log file so log lines
// never land on the alternate screen. If no file can be opened, log output is
// discarded.
func openLog() io.Closer {
	path, err := logPath()
	if err == nil {
		if f, err := tea.LogToFile(path, "sysdash"); err == nil {
			return f
		}
	}
	log.SetOutput(io.Discard)
	return nil
}

// logPath returns the log file location under the user cache directory,
// creating the directory if needed.
func logPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "sysdash")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "sysdash.log"), nil
}
