// Package statusline frames indicator status tokens as text lines and decodes
// them on the receiving side.
//
// Lines are CRLF terminated, matching what the device prints on its serial
// port. The decoder accepts both the numeric tokens ("1", "2", "3") and the
// word tokens ("left", "right").
package statusline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rhuynh06/motion-indicator/internal/domain"
)

const lineEnding = "\r\n"

var (
	// ErrBanner is returned by Parse for the startup banner
	ErrBanner = errors.New("startup banner")

	// ErrUnknownStatus indicates a line that is not a status token
	ErrUnknownStatus = errors.New("unknown status line")
)

// Writer writes one status line per call.
// This implements the ports.StatusSink interface.
// It does not implement ports.Readier: serial and stdout writers are usable
// as soon as they exist, so the indicator skips the ready wait for them.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter wraps w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteLine writes line followed by CRLF
func (sw *Writer) WriteLine(line string) error {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if _, err := io.WriteString(sw.w, line+lineEnding); err != nil {
		return fmt.Errorf("failed to write status line: %w", err)
	}
	return nil
}

// Parse decodes a single status line
func Parse(line string) (domain.State, error) {
	switch token := strings.TrimSpace(line); token {
	case domain.TokenLeft, domain.TokenLeftWord:
		return domain.StateLeft, nil
	case domain.TokenRight, domain.TokenRightWord:
		return domain.StateRight, nil
	case domain.TokenCenter:
		return domain.StateCenter, nil
	case domain.Banner:
		return domain.StateIdle, ErrBanner
	default:
		return domain.StateIdle, fmt.Errorf("%w: %q", ErrUnknownStatus, token)
	}
}

// Event is one decoded line
type Event struct {
	State domain.State
	Raw   string
	Err   error // ErrBanner, ErrUnknownStatus or nil
}

// Scanner reads status lines from a stream
type Scanner struct {
	sc    *bufio.Scanner
	event Event
}

// NewScanner creates a scanner reading from r
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{sc: bufio.NewScanner(r)}
}

// Scan advances to the next non-blank line. It returns false at the end of
// the stream or on a read error, see Err.
func (s *Scanner) Scan() bool {
	for s.sc.Scan() {
		raw := strings.TrimSpace(s.sc.Text())
		if raw == "" {
			continue
		}
		state, err := Parse(raw)
		s.event = Event{State: state, Raw: raw, Err: err}
		return true
	}
	return false
}

// Event returns the most recent line decoded by Scan
func (s *Scanner) Event() Event {
	return s.event
}

// Err returns the first read error, if any
func (s *Scanner) Err() error {
	return s.sc.Err()
}
