package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Frame accumulates one frame of terminal output and hands it to the
// underlying writer in chunks on Flush. It implements io.Writer so a Canvas
// can render into it.
type Frame struct {
	buf    strings.Builder
	bufw   *bufio.Writer
	numBuf [20]byte
}

// NewFrame creates a Frame writing to w.
func NewFrame(w io.Writer) *Frame {
	return &Frame{bufw: bufio.NewWriterSize(w, 8192)}
}

// Write implements io.Writer.
func (f *Frame) Write(p []byte) (int, error) {
	return f.buf.Write(p)
}

// WriteString appends s to the frame.
func (f *Frame) WriteString(s string) (int, error) {
	return f.buf.WriteString(s)
}

// WriteAt writes s starting at the 1-based terminal position (col, row).
func (f *Frame) WriteAt(col, row int, s string) {
	f.buf.WriteString("\033[")
	f.buf.Write(strconv.AppendInt(f.numBuf[:0], int64(row), 10))
	f.buf.WriteByte(';')
	f.buf.Write(strconv.AppendInt(f.numBuf[:0], int64(col), 10))
	f.buf.WriteByte('H')
	f.buf.WriteString(s)
}

// Len returns the number of bytes waiting for Flush.
func (f *Frame) Len() int {
	return f.buf.Len()
}

// Flush writes the accumulated frame and resets it.
func (f *Frame) Flush() error {
	data := f.buf.String()
	f.buf.Reset()
	if err := writeChunked(f.bufw, data); err != nil {
		return err
	}
	return f.bufw.Flush()
}

var _ io.Writer = (*Frame)(nil)

// TermSizeFunc returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns the size of the terminal behind os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	io.WriteString(w, "\033[0m\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	io.WriteString(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	io.WriteString(w, "\033[?25h")
}
