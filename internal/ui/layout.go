package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the day strip shows
	// bare numbers instead of "Day N" chips.
	LayoutCompactWidth = 80

	// LayoutWideWidth is the minimum width to show stop notes inline.
	LayoutWideWidth = 120
)

// Fixed chrome around the scrolling body.
const (
	headerHeight = 2 // title line + tab strip
	footerHeight = 1

	helpModalWidth = 44

	// progressBarWidth caps the packing progress bar.
	progressBarWidth = 40
)

func bodyHeight(total int) int {
	h := total - headerHeight - footerHeight
	if h < 1 {
		return 1
	}
	return h
}
