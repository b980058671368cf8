package testsupport

import (
	"sync"

	"github.com/goliatone/go-payform/pkg/analytics"
	"github.com/goliatone/go-payform/pkg/component"
	"github.com/goliatone/go-payform/pkg/payment"
)

// Submission is one delegate call captured by DelegateRecorder.
type Submission struct {
	Data      payment.ComponentData
	Component component.PaymentComponent
}

// DelegateRecorder captures DidSubmit calls. When OnSubmit is set it runs
// after the call is recorded, which lets tests finish the submission inline.
type DelegateRecorder struct {
	OnSubmit func(payment.ComponentData, component.PaymentComponent)

	mu    sync.Mutex
	calls []Submission
}

// DidSubmit implements component.Delegate.
func (r *DelegateRecorder) DidSubmit(data payment.ComponentData, pc component.PaymentComponent) {
	r.mu.Lock()
	r.calls = append(r.calls, Submission{Data: data, Component: pc})
	hook := r.OnSubmit
	r.mu.Unlock()

	if hook != nil {
		hook(data, pc)
	}
}

// Calls returns a copy of the recorded submissions.
func (r *DelegateRecorder) Calls() []Submission {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Submission(nil), r.calls...)
}

// Last returns the most recent submission.
func (r *DelegateRecorder) Last() (Submission, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return Submission{}, false
	}
	return r.calls[len(r.calls)-1], true
}

// SinkRecorder captures analytics events.
type SinkRecorder struct {
	mu     sync.Mutex
	events []analytics.Event
}

// Send implements analytics.Sink.
func (r *SinkRecorder) Send(event analytics.Event) {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
}

// Events returns a copy of the recorded events.
func (r *SinkRecorder) Events() []analytics.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]analytics.Event(nil), r.events...)
}
