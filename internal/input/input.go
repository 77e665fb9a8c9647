// Package input turns raw terminal bytes into discrete game events.
package input

import (
	"io"
)

// Event is a discrete input event.
type Event int

const (
	EventNone Event = iota
	EventMoveLeft
	EventMoveRight
	EventPause
	EventStart
	EventQuit
)

func (e Event) String() string {
	switch e {
	case EventMoveLeft:
		return "move-left"
	case EventMoveRight:
		return "move-right"
	case EventPause:
		return "pause"
	case EventStart:
		return "start"
	case EventQuit:
		return "quit"
	default:
		return "none"
	}
}

// parserState tracks progress through an ANSI CSI sequence (ESC [ <code>).
type parserState int

const (
	stateGround parserState = iota
	stateEscape
	stateCSI
)

// Parser decodes bytes one at a time. Arrow-key escape sequences may span
// several reads.
type Parser struct {
	state parserState
}

// Feed consumes one byte and returns the completed event, if any.
func (p *Parser) Feed(b byte) Event {
	switch p.state {
	case stateEscape:
		if b == '[' {
			p.state = stateCSI
			return EventNone
		}
		p.state = stateGround
	case stateCSI:
		p.state = stateGround
		switch b {
		case 'C': // Right arrow
			return EventMoveRight
		case 'D': // Left arrow
			return EventMoveLeft
		}
		return EventNone
	}

	if b == '\x1b' {
		p.state = stateEscape
		return EventNone
	}
	return byteEvent(b)
}

// Parse decodes a complete buffer.
func Parse(buf []byte) []Event {
	var p Parser
	var events []Event
	for _, b := range buf {
		if ev := p.Feed(b); ev != EventNone {
			events = append(events, ev)
		}
	}
	return events
}

// byteEvent maps single-byte keys.
func byteEvent(b byte) Event {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl-C arrives as a byte in raw mode
		return EventQuit
	case 'a', 'A', 'h', 'H':
		return EventMoveLeft
	case 'd', 'D', 'l', 'L':
		return EventMoveRight
	case 'p', 'P':
		return EventPause
	case ' ', '\n', '\r':
		return EventStart
	}
	return EventNone
}

// Stream delivers parsed events via a channel.
type Stream struct {
	ch chan Event
}

// StartStream spawns a goroutine that reads from r and sends events to the stream.
// The channel is closed when r returns an error (including io.EOF).
func StartStream(r io.Reader) *Stream {
	s := &Stream{ch: make(chan Event, 128)}
	go func() {
		defer close(s.ch)
		var p Parser
		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			for _, b := range buf[:n] {
				if ev := p.Feed(b); ev != EventNone {
					s.ch <- ev
				}
			}
			if err != nil {
				return
			}
		}
	}()
	return s
}

// Events returns the event channel.
func (s *Stream) Events() <-chan Event {
	return s.ch
}
