package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // completed successfully
	SymbolFail     = "✗" // failed
	SymbolWarning  = "⚠" // needs attention
	SymbolPending  = "○" // not yet started
	SymbolComplete = "●" // filled marker for table status cells
)
