// Package notify collects user-facing notices between two prompts.
//
// A notice has a stable id. Pushing a notice whose id is already pending
// replaces it in place, so a burst of identical failures (several calls
// rejected by the same expired session) is shown once.
package notify

import (
	"fmt"
	"io"
	"sync"
)

type Level string

const (
	Info    Level = "info"
	Success Level = "ok"
	Error   Level = "error"
)

// Well-known ids shared by every command.
const (
	IDSessionExpired = "session-expired"
	IDNetwork        = "network"
	IDValidation     = "validation-error"
	IDAuthRequired   = "auth-required"
)

type Notice struct {
	ID      string
	Level   Level
	Message string
}

// Board is safe for concurrent use.
type Board struct {
	mu      sync.Mutex
	order   []string
	pending map[string]Notice
}

func NewBoard() *Board {
	return &Board{pending: make(map[string]Notice)}
}

// Push queues a notice. An empty id never deduplicates.
func (b *Board) Push(id string, level Level, msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if id == "" {
		id = fmt.Sprintf("#%d", len(b.order))
	}
	if _, ok := b.pending[id]; !ok {
		b.order = append(b.order, id)
	}
	b.pending[id] = Notice{ID: id, Level: level, Message: msg}
}

// Pending returns the queued notices in first-push order.
func (b *Board) Pending() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshot()
}

// Flush writes the queued notices to w, one per line, and empties the board.
// A notice pushed while Flush runs is either written or left queued.
func (b *Board) Flush(w io.Writer) error {
	b.mu.Lock()
	notices := b.snapshot()
	b.order = b.order[:0]
	clear(b.pending)
	b.mu.Unlock()

	for _, n := range notices {
		if _, err := fmt.Fprintf(w, "[%s] %s\n", n.Level, n.Message); err != nil {
			return err
		}
	}
	return nil
}

// snapshot must be called with mu held.
func (b *Board) snapshot() []Notice {
	out := make([]Notice, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.pending[id])
	}
	return out
}
