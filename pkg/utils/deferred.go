// Package utils holds small helpers shared by the CLI.
package utils

import (
	"io"
	"sync"
)

// DeferredWriter buffers writes while the terminal is owned by a TUI and
// replays them later. Each Write is kept as a separate entry so writers
// that expect one record per call, such as zerolog.ConsoleWriter, see the
// same boundaries on Flush.
type DeferredWriter struct {
	mu      sync.Mutex
	entries [][]byte
}

// Write stores a copy of p.
func (d *DeferredWriter) Write(p []byte) (int, error) {
	buf := make([]byte, len(p))
	copy(buf, p)

	d.mu.Lock()
	d.entries = append(d.entries, buf)
	d.mu.Unlock()

	return len(p), nil
}

// Len returns the number of buffered entries.
func (d *DeferredWriter) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}

// Flush writes every buffered entry to w in order and clears the buffer.
// Entries after a failed write are kept for a later Flush.
func (d *DeferredWriter) Flush(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, entry := range d.entries {
		if _, err := w.Write(entry); err != nil {
			d.entries = d.entries[i:]
			return err
		}
	}

	d.entries = nil
	return nil
}
