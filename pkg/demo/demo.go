package demo

import (
	"github.com/selectdb/observer_demo/pkg/observer"
	"github.com/selectdb/observer_demo/pkg/subject"
	"github.com/selectdb/observer_demo/pkg/trace"
	"github.com/selectdb/observer_demo/pkg/utils"
	"github.com/selectdb/observer_demo/pkg/xmetrics"
	log "github.com/sirupsen/logrus"
)

const MetricsObserverName = "metrics"

type Config struct {
	Name string
	Sink trace.Sink
	// nil means the subject's own random generator
	Generate func() int
	// attach a MetricsObserver after A and B
	Metrics bool
}

// Run plays the fixed scenario: attach A and B, change the state twice,
// detach A, change the state once more.
func Run(cfg Config) error {
	if cfg.Name == "" {
		cfg.Name = subject.DefaultName
	}
	if cfg.Sink == nil {
		cfg.Sink = trace.NewLogrusSink(nil)
	}

	utils.BindSubject(cfg.Name)
	defer utils.UnbindSubject()

	opts := []subject.Option{subject.WithName(cfg.Name), subject.WithSink(cfg.Sink)}
	if cfg.Generate != nil {
		opts = append(opts, subject.WithStateGenerator(cfg.Generate))
	}
	s := subject.New(opts...)

	observerA := observer.NewObserverA(cfg.Sink)
	s.Attach(observerA)

	observerB := observer.NewObserverB(cfg.Sink)
	s.Attach(observerB)

	if cfg.Metrics {
		s.Attach(observer.NewMetricsObserver(MetricsObserverName))
	}

	s.SomeBusinessLogic()
	s.SomeBusinessLogic()

	if err := s.Detach(observerA); err != nil {
		xmetrics.AddError(err)
		return err
	}

	s.SomeBusinessLogic()

	log.Debugf("demo done, %s", s.String())
	return nil
}
