// Package draw renders filled colored circles to an ANSI terminal.
package draw

import (
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"
)

// Block characters for drawing.
const (
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Canvas is a truecolor drawing buffer with 2x vertical resolution using
// half-block characters. Drawing happens in logical coordinates (the arena)
// that are scaled uniformly to fit the terminal and centered in it.
type Canvas struct {
	termWidth      int // Terminal columns available
	termHeight     int // Terminal rows available
	cols, rows     int // Cells actually used by the scaled arena
	subPixelHeight int // rows * 2

	pixels []color.RGBA // Flat slice: [y * cols + x]
	set    []bool       // Whether pixels[i] was drawn this frame

	logicalWidth  float64
	logicalHeight float64
	scale         float64 // Sub-pixels per logical unit, both axes

	// 0-based terminal offsets (columns/rows to skip) centering the arena.
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
	numBuf    [20]byte
}

// NewScaledCanvas creates a canvas mapping a logicalWidth x logicalHeight
// area onto a termWidth x termHeight terminal.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping the
// logical size. Aspect ratio is preserved; the unused margin becomes offset.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth == c.termWidth && termHeight == c.termHeight && c.pixels != nil {
		return
	}
	c.termWidth = max(termWidth, 1)
	c.termHeight = max(termHeight, 1)

	c.scale = math.Min(float64(c.termWidth)/c.logicalWidth, float64(c.termHeight*2)/c.logicalHeight)
	c.cols = max(int(c.logicalWidth*c.scale), 1)
	c.rows = max(int(math.Ceil(c.logicalHeight*c.scale/2-1e-9)), 1)
	c.rows = min(c.rows, c.termHeight)
	c.subPixelHeight = c.rows * 2

	c.offsetCol = (c.termWidth - c.cols) / 2
	c.offsetRow = (c.termHeight - c.rows) / 2

	c.pixels = make([]color.RGBA, c.cols*c.subPixelHeight)
	c.set = make([]bool, c.cols*c.subPixelHeight)
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.set)
}

// Size returns the cells used by the arena.
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// Offset returns the 0-based terminal column and row the arena starts after.
func (c *Canvas) Offset() (col, row int) {
	return c.offsetCol, c.offsetRow
}

// TerminalSize returns the terminal dimensions the canvas was sized for.
func (c *Canvas) TerminalSize() (width, height int) {
	return c.termWidth, c.termHeight
}

// setPixel sets a pixel at sub-pixel coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col color.RGBA) {
	if x >= 0 && x < c.cols && y >= 0 && y < c.subPixelHeight {
		i := y*c.cols + x
		c.pixels[i] = col
		c.set[i] = true
	}
}

// Pixel reports the color at sub-pixel (x, y) and whether it was drawn.
func (c *Canvas) Pixel(x, y int) (color.RGBA, bool) {
	if x < 0 || x >= c.cols || y < 0 || y >= c.subPixelHeight {
		return color.RGBA{}, false
	}
	i := y*c.cols + x
	return c.pixels[i], c.set[i]
}

// FillCircle fills the circle centered on (x, y) with radius r, all in
// logical coordinates. A circle too small to cover any sub-pixel center
// still sets the sub-pixel under its center.
func (c *Canvas) FillCircle(x, y, r float64, col color.RGBA) {
	cx, cy, pr := x*c.scale, y*c.scale, r*c.scale
	r2 := pr * pr

	yStart := int(math.Floor(cy - pr))
	yEnd := int(math.Ceil(cy + pr))
	xStart := int(math.Floor(cx - pr))
	xEnd := int(math.Ceil(cx + pr))

	drawn := false
	for py := yStart; py <= yEnd; py++ {
		dy := float64(py) + 0.5 - cy
		for px := xStart; px <= xEnd; px++ {
			dx := float64(px) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				c.setPixel(px, py, col)
				drawn = true
			}
		}
	}
	if !drawn {
		c.setPixel(int(cx), int(cy), col)
	}
}

// LogicalToTerminal converts logical coordinates to a 1-based terminal
// position (col, row), offset included.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(x * c.scale)
	py := int(y * c.scale)
	return px + 1 + c.offsetCol, py/2 + 1 + c.offsetRow
}

// maxChunkSize is the maximum bytes handed to the writer at once.
const maxChunkSize = 1400

// Render writes the whole arena to w, one row at a time. Each cell carries
// its top sub-pixel as foreground and bottom sub-pixel as background of an
// upper half block, so frames overwrite each other without clearing.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.cols * c.rows * 24)

	for row := 0; row < c.rows; row++ {
		c.moveCursor(c.offsetCol+1, c.offsetRow+row+1)

		var lastFg, lastBg color.RGBA
		hasFg, hasBg := false, false
		top := row * 2 * c.cols
		bottom := top + c.cols

		for col := 0; col < c.cols; col++ {
			tSet, bSet := c.set[top+col], c.set[bottom+col]
			tCol, bCol := c.pixels[top+col], c.pixels[bottom+col]

			switch {
			case !tSet && !bSet:
				if hasFg || hasBg {
					c.renderBuf.WriteString("\033[0m")
					hasFg, hasBg = false, false
				}
				c.renderBuf.WriteByte(' ')
				continue
			case tSet && bSet:
				if !hasFg || lastFg != tCol {
					c.sgr(38, tCol)
					lastFg, hasFg = tCol, true
				}
				if !hasBg || lastBg != bCol {
					c.sgr(48, bCol)
					lastBg, hasBg = bCol, true
				}
				c.renderBuf.WriteRune(BlockUpperHalf)
				continue
			}

			// Exactly one half is set: draw it as foreground on the default
			// background.
			if hasBg {
				c.renderBuf.WriteString("\033[49m")
				hasBg = false
			}
			fg, glyph := tCol, BlockUpperHalf
			if bSet {
				fg, glyph = bCol, BlockLowerHalf
			}
			if !hasFg || lastFg != fg {
				c.sgr(38, fg)
				lastFg, hasFg = fg, true
			}
			c.renderBuf.WriteRune(glyph)
		}
		c.renderBuf.WriteString("\033[0m")
	}

	return writeChunked(w, c.renderBuf.String())
}

// RenderBorder draws a box around the arena when the terminal has room for
// one on either axis.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1
	hasV := c.offsetRow >= 1

	left := c.offsetCol
	right := c.offsetCol + c.cols + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.rows + 1

	var buf strings.Builder
	line := strings.Repeat("─", c.cols)
	if hasV {
		if hasH {
			buf.WriteString(cursorTo(left, top) + "┌" + line + "┐")
			buf.WriteString(cursorTo(left, bottom) + "└" + line + "┘")
		} else {
			buf.WriteString(cursorTo(left+1, top) + line)
			buf.WriteString(cursorTo(left+1, bottom) + line)
		}
	}
	if hasH {
		for row := top + 1; row < bottom; row++ {
			buf.WriteString(cursorTo(left, row) + "│" + cursorTo(right, row) + "│")
		}
	}
	return writeChunked(w, buf.String())
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// sgr appends a 24-bit color selection; layer is 38 (fg) or 48 (bg).
func (c *Canvas) sgr(layer int, col color.RGBA) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(layer), 10))
	c.renderBuf.WriteString(";2;")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col.R), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col.G), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col.B), 10))
	c.renderBuf.WriteByte('m')
}

func cursorTo(col, row int) string {
	return "\033[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}

func writeChunked(w io.Writer, data string) error {
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}
