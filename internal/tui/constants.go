package tui

import "time"

// UI Layout Constants

const (
	// Rows outside the two text regions: button row + status bar
	ChromeRows = 2

	// Columns consumed by the focus bar on the left of each region
	RegionBorderWidth = 1
	RegionPaddingLeft = 1

	// Footer messages longer than this are truncated
	StatusMaxLength = 100

	// How long a status or error message stays on the footer
	MessageTimeout = 5 * time.Second
)
