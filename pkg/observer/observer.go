package observer

import (
	"github.com/selectdb/observer_demo/pkg/subject"
	"github.com/selectdb/observer_demo/pkg/trace"
	"github.com/selectdb/observer_demo/pkg/utils"
	"github.com/selectdb/observer_demo/pkg/xmetrics"
)

const (
	ObserverAName = "ConcreteObserverA"
	ObserverBName = "ConcreteObserverB"
)

var (
	_ utils.Observer[*subject.Subject] = (*ObserverA)(nil)
	_ utils.Observer[*subject.Subject] = (*ObserverB)(nil)
	_ utils.Observer[*subject.Subject] = (*MetricsObserver)(nil)
)

func react(sink trace.Sink, name string, s *subject.Subject) {
	sink.Emit(trace.Event{
		Kind:    trace.KindReaction,
		Subject: s.Name(),
		Source:  name,
		State:   s.State(),
		Message: "reacted to the event",
	})
	xmetrics.ObserverReacted(name)
}

func sinkOrDefault(sink trace.Sink) trace.Sink {
	if sink == nil {
		return trace.NewLogrusSink(nil)
	}
	return sink
}

// ObserverA reacts to small states.
type ObserverA struct {
	sink trace.Sink
}

func NewObserverA(sink trace.Sink) *ObserverA {
	return &ObserverA{sink: sinkOrDefault(sink)}
}

func (o *ObserverA) Name() string {
	return ObserverAName
}

func (o *ObserverA) Reacts(state int) bool {
	return state < 3
}

func (o *ObserverA) Update(s *subject.Subject) {
	if o.Reacts(s.State()) {
		react(o.sink, o.Name(), s)
	}
}

// ObserverB reacts to zero and to every state from 2 up.
type ObserverB struct {
	sink trace.Sink
}

func NewObserverB(sink trace.Sink) *ObserverB {
	return &ObserverB{sink: sinkOrDefault(sink)}
}

func (o *ObserverB) Name() string {
	return ObserverBName
}

func (o *ObserverB) Reacts(state int) bool {
	return state == 0 || state >= 2
}

func (o *ObserverB) Update(s *subject.Subject) {
	if o.Reacts(s.State()) {
		react(o.sink, o.Name(), s)
	}
}
