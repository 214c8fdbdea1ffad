package trace

import "fmt"

type Kind string

const (
	KindAttach       Kind = "attach"
	KindDetach       Kind = "detach"
	KindNotify       Kind = "notify"
	KindBusiness     Kind = "business"
	KindStateChanged Kind = "state_changed"
	KindReaction     Kind = "reaction"
)

// Event is one line of the trace emitted by subjects and observers.
type Event struct {
	Kind    Kind
	Subject string
	Source  string // the subject itself or an observer name
	State   int
	Message string
}

func (e Event) String() string {
	return fmt.Sprintf("kind: %s, subject: %s, source: %s, state: %d, message: %s",
		e.Kind, e.Subject, e.Source, e.State, e.Message)
}

// Sink receives trace events. Emit must not fail.
type Sink interface {
	Emit(Event)
}

type multiSink []Sink

// Multi fans every event out to all sinks in order.
func Multi(sinks ...Sink) Sink {
	return multiSink(sinks)
}

func (m multiSink) Emit(event Event) {
	for _, sink := range m {
		sink.Emit(event)
	}
}
