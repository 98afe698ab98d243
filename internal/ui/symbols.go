package ui

// Status symbols used in tables and spinners.
const (
	SymbolOnline  = "●"
	SymbolOffline = "○"
	SymbolSuccess = "✓"
	SymbolFail    = "✗"
	SymbolWarning = "!"
)
