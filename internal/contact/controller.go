package contact

import (
	"context"
	"errors"
	"sync"

	"github.com/webcraftstudio/webcraft/internal/notify"
)

var (
	// ErrSubmitInProgress is returned while a submission is outstanding.
	ErrSubmitInProgress = errors.New("submission already in progress")
	// ErrAlreadySubmitted is returned until the confirmation view is reset.
	ErrAlreadySubmitted = errors.New("form already submitted")
)

// Phase is where the controller is in its lifecycle.
type Phase int

const (
	PhaseEditing Phase = iota
	PhaseSubmitting
	PhaseSubmitted
)

func (p Phase) String() string {
	switch p {
	case PhaseEditing:
		return "editing"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// Controller manages one contact form instance.
type Controller struct {
	variant   Variant
	submitter Submitter
	notifier  notify.Notifier

	mu    sync.Mutex
	form  FormState
	phase Phase
}

// NewController returns an empty, editable controller.
func NewController(variant Variant, submitter Submitter, notifier notify.Notifier) *Controller {
	if submitter == nil {
		submitter = SimulatedSubmitter{Delay: DefaultSimulatedDelay}
	}
	if notifier == nil {
		notifier = notify.NotifierFunc(func(notify.Notification) {})
	}
	return &Controller{
		variant:   variant,
		submitter: submitter,
		notifier:  notifier,
	}
}

// Variant returns the form flavour this controller validates against.
func (c *Controller) Variant() Variant {
	return c.variant
}

// OnFieldChange updates one field. It never validates. Edits are dropped
// while the confirmation view is showing.
func (c *Controller) OnFieldChange(field Field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseSubmitted {
		return
	}
	c.form.Set(field, value)
}

// Snapshot returns a copy of the current field values.
func (c *Controller) Snapshot() FormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// IsSubmitting reports whether a submission is outstanding.
func (c *Controller) IsSubmitting() bool {
	return c.Phase() == PhaseSubmitting
}

// IsSubmitted reports whether the confirmation view is showing.
func (c *Controller) IsSubmitted() bool {
	return c.Phase() == PhaseSubmitted
}

// Submit validates the form and, when valid, delivers it and waits for the
// outcome. Validation failures are returned as *ValidationError.
func (c *Controller) Submit(ctx context.Context) (Result, error) {
	s, err := c.Start(ctx)
	if err != nil {
		return Result{}, err
	}
	return s.Wait(), nil
}

// Start validates the form and begins delivery in the background. Exactly
// one notification is shown per attempt that gets past the phase checks.
func (c *Controller) Start(ctx context.Context) (*Submission, error) {
	c.mu.Lock()
	switch c.phase {
	case PhaseSubmitting:
		c.mu.Unlock()
		return nil, ErrSubmitInProgress
	case PhaseSubmitted:
		c.mu.Unlock()
		return nil, ErrAlreadySubmitted
	}

	c.phase = PhaseSubmitting
	form := c.form
	result := Validate(form, c.variant)
	if !result.Valid {
		c.phase = PhaseEditing
		c.mu.Unlock()
		c.notifier.Notify(notify.Notification{
			Kind: notify.KindError,
			Text: result.Message(),
		})
		return nil, result.Err()
	}
	c.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	s := newSubmission(cancel)
	go func() {
		defer cancel()
		r := c.submitter.Submit(ctx, form)
		if r.Outcome == OutcomeDelivered && ctx.Err() != nil {
			r = Failed(ctx.Err())
		}
		c.complete(r)
		s.finish(r)
	}()
	return s, nil
}

func (c *Controller) complete(r Result) {
	c.mu.Lock()
	var n notify.Notification
	if r.Outcome == OutcomeDelivered {
		c.phase = PhaseSubmitted
		c.form = FormState{}
		n = notify.Notification{
			Kind:         notify.KindSuccess,
			Title:        c.variant.SuccessTitle(),
			Text:         c.variant.SuccessText(),
			DismissAfter: c.variant.SuccessDismissAfter(),
		}
	} else {
		c.phase = PhaseEditing
		text := FailureText
		if r.Outcome == OutcomeRejected && len(r.Errors) > 0 {
			text = ValidationResult{Errors: r.Errors}.Message()
		}
		n = notify.Notification{Kind: notify.KindError, Text: text}
	}
	c.mu.Unlock()

	c.notifier.Notify(n)
}

// Reset clears the form and returns to editing. It is the "send another
// message" action and is ignored while a submission is outstanding.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseSubmitting {
		return
	}
	c.form = FormState{}
	c.phase = PhaseEditing
}
