package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutWideWidth is the minimum width to show the request id in the header.
	LayoutWideWidth = 110
)

const (
	// headerLines is the header plus the command bar.
	headerLines = 2

	// failureLogLines is how many recent log records the failure screen shows.
	failureLogLines = 8
)
