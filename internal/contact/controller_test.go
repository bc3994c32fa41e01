package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/webcraftstudio/webcraft/internal/notify"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fillValid(c *Controller) {
	c.OnFieldChange(FieldName, "Jo Smith")
	c.OnFieldChange(FieldEmail, "jo@company.com")
	c.OnFieldChange(FieldCompany, "Acme")
	c.OnFieldChange(FieldBudget, string(Budget10kTo25k))
	c.OnFieldChange(FieldMessage, "We need a new website.")
}

func instant() Submitter {
	return SimulatedSubmitter{Delay: 0}
}

func TestControllerStartsEmpty(t *testing.T) {
	c := NewController(VariantPage, instant(), nil)
	assert.True(t, c.Snapshot().IsEmpty())
	assert.Equal(t, PhaseEditing, c.Phase())
	assert.False(t, c.IsSubmitting())
	assert.False(t, c.IsSubmitted())
}

func TestSubmitInvalidReportsEveryFailure(t *testing.T) {
	rec := &notify.Recorder{}
	c := NewController(VariantStandalone, instant(), rec)
	c.OnFieldChange(FieldName, "")
	c.OnFieldChange(FieldEmail, "a@b.com")
	c.OnFieldChange(FieldBusiness, "")
	c.OnFieldChange(FieldMessage, "hi")

	_, err := c.Submit(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{MsgNameRequired, MsgBusinessRequired}, verr.Errors)

	assert.False(t, c.IsSubmitting())
	assert.False(t, c.IsSubmitted())
	assert.Equal(t, "a@b.com", c.Snapshot().Email, "fields are kept for editing")

	all := rec.All()
	require.Len(t, all, 1)
	assert.Equal(t, notify.KindError, all[0].Kind)
	assert.Equal(t, "Name is required. Business name is required", all[0].Text)
}

func TestSubmitInvalidEmailOnly(t *testing.T) {
	rec := &notify.Recorder{}
	c := NewController(VariantPage, instant(), rec)
	c.OnFieldChange(FieldName, "Jo")
	c.OnFieldChange(FieldEmail, "not-an-email")
	c.OnFieldChange(FieldMessage, "hi")

	_, err := c.Submit(context.Background())
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{MsgEmailInvalid}, verr.Errors)

	n, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, "Valid email address is required", n.Text)
}

func TestSubmitValidDeliversAndClears(t *testing.T) {
	rec := &notify.Recorder{}
	var got FormState
	sub := SubmitterFunc(func(ctx context.Context, form FormState) Result {
		got = form
		return Delivered("lead-1")
	})
	c := NewController(VariantPage, sub, rec)
	fillValid(c)

	res, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeDelivered, res.Outcome)
	assert.Equal(t, "lead-1", res.Reference)
	assert.Equal(t, "Acme", got.Company)

	assert.True(t, c.IsSubmitted())
	assert.False(t, c.IsSubmitting())
	assert.True(t, c.Snapshot().IsEmpty())

	all := rec.All()
	require.Len(t, all, 1)
	assert.Equal(t, notify.KindSuccess, all[0].Kind)
	assert.Equal(t, "Message sent!", all[0].Title)
	assert.Contains(t, all[0].Text, "Thank you for your message")
}

func TestSimulatedSubmitterWaitsForDelay(t *testing.T) {
	rec := &notify.Recorder{}
	c := NewController(VariantStandalone, SimulatedSubmitter{Delay: 30 * time.Millisecond}, rec)
	fillValid(c)

	start := time.Now()
	s, err := c.Start(context.Background())
	require.NoError(t, err)
	assert.True(t, c.IsSubmitting())

	_, err = c.Start(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInProgress)

	res := s.Wait()
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	assert.Equal(t, OutcomeDelivered, res.Outcome)
	assert.True(t, c.IsSubmitted())

	n, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, "Thank you for your message. We'll be in touch within one business day.", n.Text)
	assert.Equal(t, 5*time.Second, n.DismissAfter)
	assert.Len(t, rec.All(), 1, "rejected double submit must not notify")
}

func TestSubmittedFormIsLockedUntilReset(t *testing.T) {
	c := NewController(VariantPage, instant(), nil)
	fillValid(c)
	_, err := c.Submit(context.Background())
	require.NoError(t, err)

	c.OnFieldChange(FieldName, "ignored")
	assert.True(t, c.Snapshot().IsEmpty())

	_, err = c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	c.Reset()
	assert.Equal(t, PhaseEditing, c.Phase())
	assert.True(t, c.Snapshot().IsEmpty())

	c.OnFieldChange(FieldName, "Again")
	assert.Equal(t, "Again", c.Snapshot().Name)
}

func TestResetClearsEditingForm(t *testing.T) {
	c := NewController(VariantPage, instant(), nil)
	c.OnFieldChange(FieldName, "Jo")
	c.Reset()
	assert.True(t, c.Snapshot().IsEmpty())
	assert.Equal(t, PhaseEditing, c.Phase())
}

func TestFailedDeliveryKeepsForm(t *testing.T) {
	rec := &notify.Recorder{}
	sub := SubmitterFunc(func(ctx context.Context, form FormState) Result {
		return Failed(errors.New("connection refused"))
	})
	c := NewController(VariantPage, sub, rec)
	fillValid(c)

	res, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.EqualError(t, res.Err, "connection refused")

	assert.Equal(t, PhaseEditing, c.Phase())
	assert.Equal(t, "Jo Smith", c.Snapshot().Name)

	n, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, notify.KindError, n.Kind)
	assert.Equal(t, FailureText, n.Text)
}

func TestRejectedDeliveryShowsServerErrors(t *testing.T) {
	rec := &notify.Recorder{}
	sub := SubmitterFunc(func(ctx context.Context, form FormState) Result {
		return Rejected("Message is too long")
	})
	c := NewController(VariantPage, sub, rec)
	fillValid(c)

	res, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeRejected, res.Outcome)

	n, _ := rec.Last()
	assert.Equal(t, "Message is too long", n.Text)
	assert.False(t, c.IsSubmitted())
}

func TestCancelSubmission(t *testing.T) {
	rec := &notify.Recorder{}
	c := NewController(VariantPage, SimulatedSubmitter{Delay: time.Hour}, rec)
	fillValid(c)

	s, err := c.Start(context.Background())
	require.NoError(t, err)
	s.Cancel()

	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("submission did not finish after cancel")
	}
	res := s.Wait()
	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.Equal(t, PhaseEditing, c.Phase())
	assert.Equal(t, "Jo Smith", c.Snapshot().Name)
}

func TestResetIgnoredWhileSubmitting(t *testing.T) {
	release := make(chan struct{})
	sub := SubmitterFunc(func(ctx context.Context, form FormState) Result {
		<-release
		return Delivered("")
	})
	c := NewController(VariantPage, sub, nil)
	fillValid(c)

	s, err := c.Start(context.Background())
	require.NoError(t, err)
	c.Reset()
	assert.True(t, c.IsSubmitting())

	close(release)
	s.Wait()
	assert.True(t, c.IsSubmitted())
}

func TestOutcomeAndPhaseStrings(t *testing.T) {
	assert.Equal(t, "delivered", OutcomeDelivered.String())
	assert.Equal(t, "rejected", OutcomeRejected.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
	assert.Equal(t, "submitting", PhaseSubmitting.String())
	assert.Equal(t, "submitted", PhaseSubmitted.String())
}
