package ssh

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chubbymaggie/shuriken16/shuriken/backend/terminal/render"
)

const (
	esc   = "\x1b"
	csi   = esc + "["
	reset = csi + "0m"

	clearScreen      = csi + "2J"
	hideCursor       = csi + "?25l"
	showCursor       = csi + "?25h"
	enableAltScreen  = csi + "?1049h"
	disableAltScreen = csi + "?1049l"
)

// moveTo positions the cursor at row, col (1-based).
func moveTo(row, col int) string {
	return fmt.Sprintf("%s%d;%dH", csi, row, col)
}

// encodeCells writes a full screen of half-block cells. The SGR sequence is
// only repeated when the colors change from the previous cell of the row.
func encodeCells(cells [][]render.Cell) string {
	var sb strings.Builder
	for y, row := range cells {
		sb.WriteString(moveTo(y+1, 1))
		var prev render.Cell
		for x, c := range row {
			if x == 0 || c != prev {
				writeCellSGR(&sb, c)
				prev = c
			}
			sb.WriteRune(render.UpperHalfBlock)
		}
	}
	sb.WriteString(reset)
	return sb.String()
}

// writeCellSGR writes a combined truecolor foreground/background SGR.
func writeCellSGR(sb *strings.Builder, c render.Cell) {
	sb.WriteString(csi + "0;38;2;")
	sb.WriteString(strconv.Itoa(int(c.Top.R)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.Top.G)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.Top.B)))
	sb.WriteString(";48;2;")
	sb.WriteString(strconv.Itoa(int(c.Bottom.R)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.Bottom.G)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.Bottom.B)))
	sb.WriteByte('m')
}
