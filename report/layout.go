package report

import (
	"fmt"
	"image/color"

	"github.com/carbocation/pfx"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Tray tint colors, matching the color-coded tray labels the lab uses.
var trayColors = map[string]color.RGBA{
	"R": {R: 240, G: 128, B: 128, A: 255}, // light coral
	"G": {R: 144, G: 238, B: 144, A: 255}, // light green
	"B": {R: 173, G: 216, B: 230, A: 255}, // light blue
}

var defaultTrayColor = color.RGBA{R: 211, G: 211, B: 211, A: 255}

const (
	cellSize    = 64
	gridMargin  = 36
	titleHeight = 28
)

func trayColor(label string) color.RGBA {
	if c, ok := trayColors[label]; ok {
		return c
	}
	return defaultTrayColor
}

// drawGrid renders one tray layout: rows by columns of wells, each labeled
// with the sample occupying it, tinted in the tray's color, and saves it as
// a PNG.
func drawGrid(path, title, tray, rows string, columns int, wells map[string]string) error {
	width := columns*cellSize + 2*gridMargin
	height := len(rows)*cellSize + 2*gridMargin + titleHeight

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(title, float64(width)/2, float64(titleHeight)/2+gridMargin/4, 0.5, 0.5)

	for i, row := range rows {
		y := float64(titleHeight + gridMargin + i*cellSize)
		dc.DrawStringAnchored(string(row), gridMargin/2, y+cellSize/2, 0.5, 0.5)

		for col := 1; col <= columns; col++ {
			x := float64(gridMargin + (col-1)*cellSize)
			if i == 0 {
				dc.DrawStringAnchored(fmt.Sprintf("%d", col), x+cellSize/2, float64(titleHeight+gridMargin)-10, 0.5, 0.5)
			}

			dc.DrawRectangle(x, y, cellSize, cellSize)
			dc.SetColor(trayColor(tray))
			dc.FillPreserve()
			dc.SetRGB(0, 0, 0)
			dc.Stroke()

			if name := wells[fmt.Sprintf("%c%d", row, col)]; name != "" {
				dc.DrawStringAnchored(name, x+cellSize/2, y+cellSize/2, 0.5, 0.5)
			}
		}
	}

	if err := dc.SavePNG(path); err != nil {
		return pfx.Err(err)
	}
	return nil
}
