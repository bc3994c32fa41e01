package contact

import (
	"context"
	"sync"
	"time"
)

// Outcome classifies how a submission ended.
type Outcome int

const (
	// OutcomeDelivered means the endpoint accepted the lead.
	OutcomeDelivered Outcome = iota
	// OutcomeRejected means the endpoint refused the form, usually with its
	// own validation errors.
	OutcomeRejected
	// OutcomeFailed covers transport errors, server errors and cancellation.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDelivered:
		return "delivered"
	case OutcomeRejected:
		return "rejected"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is what a Submitter reports back.
type Result struct {
	Outcome Outcome
	// Reference identifies the stored lead when delivered.
	Reference string
	// Errors lists the endpoint's reasons when rejected.
	Errors []string
	Err    error
}

// Delivered builds a successful Result.
func Delivered(reference string) Result {
	return Result{Outcome: OutcomeDelivered, Reference: reference}
}

// Rejected builds a Result for a form the endpoint refused.
func Rejected(errs ...string) Result {
	return Result{Outcome: OutcomeRejected, Errors: errs}
}

// Failed builds a Result for a submission that never got an answer.
func Failed(err error) Result {
	return Result{Outcome: OutcomeFailed, Err: err}
}

// Submitter delivers a validated form somewhere.
type Submitter interface {
	Submit(ctx context.Context, form FormState) Result
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, form FormState) Result

func (f SubmitterFunc) Submit(ctx context.Context, form FormState) Result {
	return f(ctx, form)
}

// DefaultSimulatedDelay stands in for the network round trip.
const DefaultSimulatedDelay = 1500 * time.Millisecond

// SimulatedSubmitter accepts every form after a fixed delay.
type SimulatedSubmitter struct {
	Delay time.Duration
}

func (s SimulatedSubmitter) Submit(ctx context.Context, form FormState) Result {
	delay := s.Delay
	if delay < 0 {
		delay = 0
	}
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-t.C:
		return Delivered("")
	case <-ctx.Done():
		return Failed(ctx.Err())
	}
}

// Submission is a handle on one in-flight submission.
type Submission struct {
	done   chan struct{}
	cancel context.CancelFunc
	once   sync.Once
	result Result
}

func newSubmission(cancel context.CancelFunc) *Submission {
	return &Submission{done: make(chan struct{}), cancel: cancel}
}

func (s *Submission) finish(r Result) {
	s.once.Do(func() {
		s.result = r
		close(s.done)
	})
}

// Done is closed once the controller has applied the result.
func (s *Submission) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until the submission completes.
func (s *Submission) Wait() Result {
	<-s.done
	return s.result
}

// Cancel abandons the submission. The form returns to editing with its
// values kept.
func (s *Submission) Cancel() {
	s.cancel()
}
