package ui

// Unicode symbols for feedback lines.
const (
	SymbolSuccess = "✓" // Step passed
	SymbolFail    = "✗" // Command failed
	SymbolPending = "○" // Waiting on the learner
	SymbolHint    = "?" // Hint line
	SymbolSkipped = "⊘" // Skipped
)
