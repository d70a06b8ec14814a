// Package input turns raw terminal bytes into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report repeats, so holding is inferred from recent presses.
const keyHoldDuration = 60 * time.Millisecond

// Input represents the current frame's input state.
//
// Movement keys are level triggered: they stay true while the key repeats.
// The remaining fields are edge triggered and true only on the frame the
// key arrived.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool

	Quit          bool
	CycleStrategy bool // Space
	ToggleGravity bool // g
	Reseed        bool // r
	Pause         bool // p
}

// Shove returns the unit direction of the held movement keys, +y down.
func (in Input) Shove() (x, y float64) {
	if in.Left {
		x--
	}
	if in.Right {
		x++
	}
	if in.Up {
		y--
	}
	if in.Down {
		y++
	}
	return x, y
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	left  time.Time
	right time.Time
	up    time.Time
	down  time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	closed bool
	state  keyState
	buf    []byte
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream without blocking.
func ReadInput(s *Stream) Input {
	s.buf = s.buf[:0]
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			s.buf = append(s.buf, b)
		default:
			break drain
		}
	}

	in := s.parse(s.buf, time.Now())
	if s.closed {
		in.Quit = true
	}
	return in
}

// parse applies buf to the held key state and builds the frame's input.
// Arrow keys arrive as CSI sequences: ESC [ A..D.
func (s *Stream) parse(buf []byte, now time.Time) Input {
	var in Input
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
			case 'B':
				s.state.down = now
			case 'C':
				s.state.right = now
			case 'D':
				s.state.left = now
			}
			i += 2
			continue
		}

		switch b {
		case 'q', 'Q', '\x03': // Ctrl-C arrives as a byte in raw mode
			in.Quit = true
		case 'a', 'A', 'h', 'H':
			s.state.left = now
		case 'd', 'D', 'l', 'L':
			s.state.right = now
		case 'w', 'W', 'k', 'K':
			s.state.up = now
		case 's', 'S', 'j', 'J':
			s.state.down = now
		case ' ':
			in.CycleStrategy = true
		case 'g', 'G':
			in.ToggleGravity = true
		case 'r', 'R':
			in.Reseed = true
		case 'p', 'P':
			in.Pause = true
		}
	}

	in.Left = now.Sub(s.state.left) < keyHoldDuration
	in.Right = now.Sub(s.state.right) < keyHoldDuration
	in.Up = now.Sub(s.state.up) < keyHoldDuration
	in.Down = now.Sub(s.state.down) < keyHoldDuration
	return in
}
