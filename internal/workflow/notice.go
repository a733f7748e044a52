package workflow

import (
	"context"
	"sync"
)

// NoticeLevel is the severity of a Notice.
type NoticeLevel string

// List of notice levels
const (
	NoticeInfo  NoticeLevel = "info"
	NoticeError NoticeLevel = "error"
)

// Notice is a transient user-facing message.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
	Fields  []string    `json:"fields,omitempty"`
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) bool

// Confirm calls f.
func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool { return f(ctx, prompt) }

// Answer is a Confirmer with a fixed answer, for callers that asked up front.
type Answer bool

// Confirm returns the fixed answer.
func (a Answer) Confirm(context.Context, string) bool { return bool(a) }

// NoticeBuffer collects notices until they are drained.
type NoticeBuffer struct {
	mu      sync.Mutex
	notices []Notice
}

// Notify appends n.
func (b *NoticeBuffer) Notify(n Notice) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notices = append(b.notices, n)
}

// Drain returns and clears the collected notices.
func (b *NoticeBuffer) Drain() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.notices
	b.notices = nil
	return out
}

type discardNotifier struct{}

func (discardNotifier) Notify(Notice) {}
