// Package notify is the toast collaborator for forms: it shows at most one
// notification at a time and dismisses them on a per-kind timer.
package notify

import (
	"sync"
	"time"
)

// Kind classifies a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notification is a single message shown to the visitor.
type Notification struct {
	Kind    Kind      `json:"kind"`
	Title   string    `json:"title,omitempty"`
	Text    string    `json:"text"`
	ShownAt time.Time `json:"shown_at"`
	// DismissAfter overrides the board's per-kind duration when positive.
	DismissAfter time.Duration `json:"-"`
}

// Notifier accepts notifications for display.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// Board holds the notification currently on screen.
type Board struct {
	mu       sync.Mutex
	current  *Notification
	seq      uint64
	timer    *time.Timer
	dismiss  map[Kind]time.Duration
	onChange func(n Notification, visible bool)
	now      func() time.Time
}

// Option configures a Board.
type Option func(*Board)

// WithDismissAfter sets the auto-dismiss duration for a kind. Zero keeps the
// notification until it is replaced.
func WithDismissAfter(kind Kind, d time.Duration) Option {
	return func(b *Board) { b.dismiss[kind] = d }
}

// WithOnChange registers a callback run whenever a notification is shown or
// dismissed. It is called without the board lock held.
func WithOnChange(fn func(n Notification, visible bool)) Option {
	return func(b *Board) { b.onChange = fn }
}

// NewBoard returns a board that dismisses success notifications after five
// seconds and keeps errors up until replaced.
func NewBoard(opts ...Option) *Board {
	b := &Board{
		dismiss: map[Kind]time.Duration{
			KindSuccess: 5 * time.Second,
			KindError:   0,
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Notify replaces whatever is showing with n.
func (b *Board) Notify(n Notification) {
	b.mu.Lock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	if n.ShownAt.IsZero() {
		n.ShownAt = b.now()
	}
	b.seq++
	seq := b.seq
	shown := n
	b.current = &shown

	after := b.dismiss[n.Kind]
	if n.DismissAfter > 0 {
		after = n.DismissAfter
	}
	if after > 0 {
		b.timer = time.AfterFunc(after, func() { b.expire(seq) })
	}
	onChange := b.onChange
	b.mu.Unlock()

	if onChange != nil {
		onChange(n, true)
	}
}

// Current returns the notification on screen, if any.
func (b *Board) Current() (Notification, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return Notification{}, false
	}
	return *b.current, true
}

// Dismiss removes the current notification.
func (b *Board) Dismiss() {
	b.mu.Lock()
	b.seq++
	b.clearLocked()
}

// Close stops any pending dismissal timer.
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}

func (b *Board) expire(seq uint64) {
	b.mu.Lock()
	if seq != b.seq {
		// replaced since this timer was armed
		b.mu.Unlock()
		return
	}
	b.clearLocked()
}

// clearLocked must be called with b.mu held; it releases it.
func (b *Board) clearLocked() {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	prev := b.current
	b.current = nil
	onChange := b.onChange
	b.mu.Unlock()

	if prev != nil && onChange != nil {
		onChange(*prev, false)
	}
}

// Recorder keeps every notification it receives. Used where a request needs
// to render what the form reported.
type Recorder struct {
	mu   sync.Mutex
	seen []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, n)
}

// All returns the notifications in arrival order.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.seen...)
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.seen) == 0 {
		return Notification{}, false
	}
	return r.seen[len(r.seen)-1], true
}
