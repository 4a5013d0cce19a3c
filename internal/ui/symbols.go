package ui

// Unicode symbols for status lines.
const (
	SymbolFail    = "✗"
	SymbolWarning = "⚠"
)
