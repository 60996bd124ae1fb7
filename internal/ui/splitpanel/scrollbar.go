package splitpanel

import (
	"github.com/charmbracelet/lipgloss"
)

// Scrollbar characters
const (
	ScrollThumbChar = "█"
	ScrollTrackChar = "│"
)

// BuildScrollbar returns one cell per visible line. Content that fits
// gets blank cells. Otherwise the thumb size is proportional to the
// visible share of totalItems and its position to scrollOffset. The thumb
// takes activeColor only when focused.
func BuildScrollbar(viewHeight, totalItems, scrollOffset int, activeColor, trackColor lipgloss.Color, focused bool) []string {
	scrollbar := make([]string, viewHeight)

	if totalItems <= viewHeight {
		for i := range scrollbar {
			scrollbar[i] = " "
		}
		return scrollbar
	}

	thumbSize := max((viewHeight*viewHeight)/totalItems, 1)
	thumbSize = min(thumbSize, max(viewHeight-2, 1))

	maxScroll := max(totalItems-viewHeight, 1)
	trackSpace := max(viewHeight-thumbSize, 0)

	thumbPos := 0
	if trackSpace > 0 {
		thumbPos = (scrollOffset * trackSpace) / maxScroll
	}
	thumbPos = min(max(thumbPos, 0), trackSpace)

	thumbColor := trackColor
	if focused {
		thumbColor = activeColor
	}
	thumbStyle := lipgloss.NewStyle().Foreground(thumbColor)
	trackStyle := lipgloss.NewStyle().Foreground(trackColor)

	for i := range viewHeight {
		if i >= thumbPos && i < thumbPos+thumbSize {
			scrollbar[i] = thumbStyle.Render(ScrollThumbChar)
		} else {
			scrollbar[i] = trackStyle.Render(ScrollTrackChar)
		}
	}

	return scrollbar
}
