package subject

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/selectdb/observer_demo/pkg/trace"
	"github.com/selectdb/observer_demo/pkg/utils"
	"github.com/selectdb/observer_demo/pkg/xerror"
	"github.com/selectdb/observer_demo/pkg/xmetrics"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

const (
	DefaultName = "subject"
	// states produced by the default generator lie in [0, MaxState)
	MaxState = 10
)

var ErrObserverNotFound = errors.New("element not found")

// Subject owns a state and the observers interested in its changes.
// It is not safe for concurrent use.
type Subject struct {
	name      string
	state     int
	observers []utils.Observer[*Subject]

	generate func() int
	sink     trace.Sink
}

var _ utils.Subject[*Subject] = (*Subject)(nil)

func New(opts ...Option) *Subject {
	s := &Subject{
		name:      DefaultName,
		observers: make([]utils.Observer[*Subject], 0),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.generate == nil {
		WithRand(rand.New(rand.NewSource(time.Now().UnixNano())))(s)
	}
	if s.sink == nil {
		s.sink = trace.NewLogrusSink(nil)
	}
	return s
}

func (s *Subject) Name() string {
	return s.name
}

func (s *Subject) State() int {
	return s.state
}

// Observers returns the number of registered observers, duplicates included.
func (s *Subject) Observers() int {
	return len(s.observers)
}

func (s *Subject) String() string {
	return fmt.Sprintf("name: %s, state: %d, observers: %d", s.name, s.state, len(s.observers))
}

func (s *Subject) emit(kind trace.Kind, message string) {
	s.sink.Emit(trace.Event{
		Kind:    kind,
		Subject: s.name,
		Source:  s.name,
		State:   s.state,
		Message: message,
	})
}

// Attach appends the observer to the registry. Attaching the same observer
// twice makes it notified twice.
func (s *Subject) Attach(observer utils.Observer[*Subject]) {
	s.observers = append(s.observers, observer)
	s.emit(trace.KindAttach, "attached an observer")
}

// Detach removes the first registered occurrence of observer.
func (s *Subject) Detach(observer utils.Observer[*Subject]) error {
	i := slices.IndexFunc(s.observers, func(o utils.Observer[*Subject]) bool {
		return o == observer
	})
	if i < 0 {
		log.Debugf("detach unknown observer %v from subject %s", observer, s.name)
		return xerror.Wrapf(ErrObserverNotFound, xerror.Registry, "detach observer from subject %s", s.name)
	}

	s.observers = slices.Delete(s.observers, i, i+1)
	s.emit(trace.KindDetach, "detached an observer")
	return nil
}

// Notify calls Update on every observer in registration order. A panic in an
// observer stops the loop and reaches the caller.
func (s *Subject) Notify() {
	s.emit(trace.KindNotify, "notifying observers...")
	xmetrics.Notify(s.name, len(s.observers))

	// observers may detach themselves during Update
	observers := slices.Clone(s.observers)
	for _, o := range observers {
		o.Update(s)
	}
}

// SomeBusinessLogic changes the state and then notifies the observers.
func (s *Subject) SomeBusinessLogic() {
	s.emit(trace.KindBusiness, "doing something important")
	s.state = s.generate()
	xmetrics.StateChanged(s.name, s.state)

	s.emit(trace.KindStateChanged, fmt.Sprintf("my state has just changed to: %d", s.state))
	s.Notify()
}
