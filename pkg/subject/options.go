package subject

import (
	"math/rand"

	"github.com/selectdb/observer_demo/pkg/trace"
)

type Option func(*Subject)

// WithName labels the trace events and metrics of the subject.
func WithName(name string) Option {
	return func(s *Subject) {
		s.name = name
	}
}

func WithSink(sink trace.Sink) Option {
	return func(s *Subject) {
		s.sink = sink
	}
}

// WithStateGenerator replaces the random state source used by SomeBusinessLogic.
func WithStateGenerator(generate func() int) Option {
	return func(s *Subject) {
		s.generate = generate
	}
}

// WithRand draws states in [0, MaxState) from r.
func WithRand(r *rand.Rand) Option {
	return func(s *Subject) {
		s.generate = func() int {
			return r.Intn(MaxState)
		}
	}
}
