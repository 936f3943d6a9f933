package commands

const (
	msgNoHistoryRecorded = "No history recorded yet."
	msgHistoryCleared    = "History cleared."
)
