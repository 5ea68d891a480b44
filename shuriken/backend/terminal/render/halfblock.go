package render

import (
	"image"
	"image/color"
)

// UpperHalfBlock is drawn with the top pixel as foreground and the bottom
// pixel as background, so one character cell shows two stacked pixels.
const UpperHalfBlock = '▀'

var black = color.RGBA{A: 0xff}

// Cell is one character cell of a half-block image.
type Cell struct {
	Top    color.RGBA
	Bottom color.RGBA
}

// HalfBlockCells lays img out at rect inside a cols x rows cell grid, where
// each cell covers two pixel rows. Pixels outside rect are black.
func HalfBlockCells(img *image.RGBA, rect image.Rectangle, cols, rows int) [][]Cell {
	at := func(x, y int) color.RGBA {
		p := image.Pt(x, y)
		if !p.In(rect) {
			return black
		}
		return img.RGBAAt(p.X-rect.Min.X+img.Rect.Min.X, p.Y-rect.Min.Y+img.Rect.Min.Y)
	}

	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
		for c := range cells[r] {
			cells[r][c] = Cell{Top: at(c, 2*r), Bottom: at(c, 2*r+1)}
		}
	}
	return cells
}
