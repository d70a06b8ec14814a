// Package loop drives an interactive ball pit in a terminal.
package loop

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/rand"

	"github.com/tomz197/ballpit/internal/config"
	"github.com/tomz197/ballpit/internal/draw"
	"github.com/tomz197/ballpit/internal/input"
)

// Options configures Run.
type Options struct {
	Config       *config.Config
	Rand         *rand.Rand
	Logger       *log.Logger
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of os.Stdout
}

// Run starts the Input → Update → Draw cycle and blocks until the user quits
// or r ends.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	session, err := NewSession(cfg, opts.Rand, opts.Logger)
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}
	stream := input.StartStream(r)

	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return fmt.Errorf("reading terminal size: %w", err)
	}
	canvas := draw.NewScaledCanvas(termWidth, termHeight-hudRows, cfg.Arena.Width, cfg.Arena.Height)
	frame := draw.NewFrame(w)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	lastTime := time.Now()
	for session.Running {
		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT + UPDATE =====
		if err := session.Update(input.ReadInput(stream), delta); err != nil {
			return err
		}

		// ===== DRAW =====
		if err := drawFrame(session, canvas, frame, sizeFunc); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// hudRows is the number of terminal rows kept free below the arena.
const hudRows = 2

func drawFrame(s *Session, canvas *draw.Canvas, frame *draw.Frame, sizeFunc draw.TermSizeFunc) error {
	if tw, th, err := sizeFunc(); err == nil {
		if cw, ch := canvas.TerminalSize(); tw != cw || th-hudRows != ch {
			canvas.Resize(tw, th-hudRows)
			draw.ClearScreen(frame)
		}
	}

	s.Draw(canvas)
	if err := canvas.Render(frame); err != nil {
		return err
	}
	if err := canvas.RenderBorder(frame); err != nil {
		return err
	}

	offCol, offRow := canvas.Offset()
	_, rows := canvas.Size()
	row := offRow + rows + 1
	if offRow >= 1 {
		row++ // Below the border
	}
	for i, line := range s.hudLines() {
		frame.WriteAt(offCol+1, row+i, "\033[0m\033[K"+line)
	}
	return frame.Flush()
}
