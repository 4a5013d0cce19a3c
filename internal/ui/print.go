package ui

import (
	"fmt"
	"io"
	"strings"
)

// PrintError writes err to w in the error color. Structured errors already
// start with the failure symbol; anything else gets one added.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	msg := strings.TrimRight(err.Error(), "\n")
	if !strings.HasPrefix(msg, SymbolFail) {
		msg = SymbolFail + " " + msg
	}
	fmt.Fprintln(w, ErrorStyle().Render(msg))
}

// PrintWarning writes a warning line to w.
func PrintWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, WarningStyle().Render(SymbolWarning+" "+msg))
}
