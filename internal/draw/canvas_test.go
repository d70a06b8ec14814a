package draw

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.RGBA{R: 255, A: 255}

func TestResizeKeepsAspect(t *testing.T) {
	// 800x600 arena on a 100x30 terminal: height limits, 60/600 sub-pixels
	// per unit.
	c := NewScaledCanvas(100, 30, 800, 600)
	cols, rows := c.Size()
	assert.Equal(t, 80, cols)
	assert.Equal(t, 30, rows)

	col, row := c.Offset()
	assert.Equal(t, 10, col)
	assert.Equal(t, 0, row)

	c.Resize(40, 100)
	cols, rows = c.Size()
	assert.Equal(t, 40, cols)
	assert.Equal(t, 15, rows)
	_, row = c.Offset()
	assert.Equal(t, 42, row)
}

func TestFillCircle(t *testing.T) {
	c := NewScaledCanvas(80, 40, 80, 80) // One sub-pixel per unit
	c.FillCircle(40, 40, 10, red)

	got, ok := c.Pixel(40, 40)
	require.True(t, ok)
	assert.Equal(t, red, got)

	_, ok = c.Pixel(40, 49)
	assert.True(t, ok, "inside near the edge")
	_, ok = c.Pixel(40, 55)
	assert.False(t, ok, "outside")
	_, ok = c.Pixel(48, 48)
	assert.False(t, ok, "outside the diagonal")

	c.Clear()
	_, ok = c.Pixel(40, 40)
	assert.False(t, ok)
}

func TestFillCircleTinyAndClipped(t *testing.T) {
	c := NewScaledCanvas(80, 40, 80, 80)
	c.FillCircle(10.2, 10.2, 0.1, red)
	_, ok := c.Pixel(10, 10)
	assert.True(t, ok, "tiny circle still marks its center")

	assert.NotPanics(t, func() { c.FillCircle(-5, 79, 20, red) })
	_, ok = c.Pixel(0, 79)
	assert.True(t, ok)
}

func TestRender(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	blue := color.RGBA{B: 200, A: 255}
	c.setPixel(0, 0, red)
	c.setPixel(0, 1, blue)
	c.setPixel(1, 1, blue)

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))
	out := buf.String()

	assert.Contains(t, out, "\033[38;2;255;0;0m\033[48;2;0;0;200m▀")
	assert.Contains(t, out, "\033[49m\033[38;2;0;0;200m▄")
	assert.True(t, strings.HasSuffix(out, "\033[0m"))
	assert.True(t, strings.HasPrefix(out, "\033[1;1H"))
}

func TestFrameFlush(t *testing.T) {
	var buf bytes.Buffer
	f := NewFrame(&buf)
	f.WriteAt(3, 2, "hi")
	_, _ = f.WriteString(strings.Repeat("x", 5000))
	assert.Positive(t, f.Len())

	require.NoError(t, f.Flush())
	assert.Zero(t, f.Len())
	assert.True(t, strings.HasPrefix(buf.String(), "\033[2;3Hhi"))
	assert.Len(t, buf.String(), len("\033[2;3Hhi")+5000)
}
