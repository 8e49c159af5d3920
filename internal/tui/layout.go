package tui

// Screen geometry. Rows and columns are terminal cells relative to the
// top-left corner of the program's output.
const (
	marginX = 2
	marginY = 1

	cellWidth      = 6
	gridWidth      = 7 * cellWidth
	navButtonWidth = 5
	titleWidth     = gridWidth - 2*navButtonWidth
	gridRows       = 6

	navRow     = marginY
	previewRow = marginY + 2
	headerRow  = marginY + 4
	firstWeek  = marginY + 5
	statusRow  = firstWeek + gridRows + 1
)

const previewLabel = "[ Preview Reminders ]"

type targetKind int

const (
	targetNone targetKind = iota
	targetPrev
	targetNext
	targetPreview
	targetCell
)

type target struct {
	kind targetKind
	row  int
	col  int
}

// hitTest maps a click position to the element drawn there.
func hitTest(x, y int) target {
	gx := x - marginX
	if gx < 0 {
		return target{}
	}
	switch {
	case y == navRow:
		if gx < navButtonWidth {
			return target{kind: targetPrev}
		}
		if gx >= gridWidth-navButtonWidth && gx < gridWidth {
			return target{kind: targetNext}
		}
	case y == previewRow:
		if gx < len(previewLabel) {
			return target{kind: targetPreview}
		}
	case y >= firstWeek && y < firstWeek+gridRows:
		if gx < gridWidth {
			return target{kind: targetCell, row: y - firstWeek, col: gx / cellWidth}
		}
	}
	return target{}
}

// cellOrigin returns the top-left terminal position of a grid cell.
func cellOrigin(row, col int) (x, y int) {
	return marginX + col*cellWidth, firstWeek + row
}
