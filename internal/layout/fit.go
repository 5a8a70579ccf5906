// Package layout sizes text regions against the terminal.
package layout

import "strings"

// ContentHeight returns how many terminal rows content occupies once
// hard-wrapped with Wrap. Empty content still takes one row.
func ContentHeight(content string, width int) int {
	return strings.Count(Wrap(content, width), "\n") + 1
}

// MaxHeight is the largest height a region may take: half the screen
func MaxHeight(screenHeight int) int {
	h := screenHeight / 2
	if h < 1 {
		h = 1
	}
	return h
}

// Clamp caps a row count at MaxHeight and reports whether the region must
// scroll
func Clamp(rows, screenHeight int) (height int, scroll bool) {
	maxHeight := MaxHeight(screenHeight)
	if rows > maxHeight {
		return maxHeight, true
	}
	if rows < 1 {
		rows = 1
	}
	return rows, false
}

// Fit returns the height for a region showing content and whether it must
// scroll. Regions grow with their content up to half the screen height and
// scroll once clamped.
func Fit(content string, width, screenHeight int) (height int, scroll bool) {
	return Clamp(ContentHeight(content, width), screenHeight)
}
