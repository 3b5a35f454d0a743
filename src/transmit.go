package aprsobj

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// TextTransmitter writes each packet in the usual monitor format,
// SOURCE>DEST,PATH:info, one per line.  That's what a KISS utility or
// an AGW client takes as input for transmission.
type TextTransmitter struct {
	W           io.Writer
	Source      string
	Destination string // APRS if empty
	Path        string // comma separated digipeaters, may be empty

	mu sync.Mutex
}

func (t *TextTransmitter) Transmit(_ *Object, info string) error {
	var header strings.Builder
	header.WriteString(t.Source)
	header.WriteByte('>')
	header.WriteString(IfThenElse(t.Destination == "", "APRS", t.Destination))
	if t.Path != "" {
		header.WriteByte(',')
		header.WriteString(t.Path)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := fmt.Fprintf(t.W, "%s:%s\n", header.String(), info); err != nil {
		return fmt.Errorf("transmit: %w", err)
	}
	return nil
}
