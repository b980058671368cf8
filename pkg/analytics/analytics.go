// Package analytics emits fire-and-forget telemetry when a payment form is
// first presented. Sinks never report errors back to components.
package analytics

import (
	"time"

	"github.com/google/uuid"
)

// Flavor distinguishes standalone components from drop-in hosting.
type Flavor string

const (
	FlavorComponents Flavor = "components"
	FlavorDropIn     Flavor = "dropin"
)

// Event describes a form presentation.
type Event struct {
	ID          string
	Component   string
	Flavor      Flavor
	Environment string
	OccurredAt  time.Time
}

// NewEvent stamps an event with a random identifier and the current time.
func NewEvent(component string, flavor Flavor, environment string) Event {
	return Event{
		ID:          uuid.NewString(),
		Component:   component,
		Flavor:      flavor,
		Environment: environment,
		OccurredAt:  time.Now().UTC(),
	}
}

// Sink receives events. Implementations must not block the caller.
type Sink interface {
	Send(Event)
}

// SinkFunc adapts a function into a Sink.
type SinkFunc func(Event)

// Send calls the underlying function.
func (fn SinkFunc) Send(event Event) {
	fn(event)
}

// Nop discards events.
type Nop struct{}

// Send implements Sink.
func (Nop) Send(Event) {}

// Multi fans an event out to every non-nil sink.
func Multi(sinks ...Sink) Sink {
	return SinkFunc(func(event Event) {
		for _, sink := range sinks {
			if sink != nil {
				sink.Send(event)
			}
		}
	})
}
