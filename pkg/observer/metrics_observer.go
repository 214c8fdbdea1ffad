package observer

import (
	"github.com/selectdb/observer_demo/pkg/subject"
	"github.com/selectdb/observer_demo/pkg/xmetrics"
)

// MetricsObserver counts every notification it gets and exports the last
// state it saw. It never emits trace events.
type MetricsObserver struct {
	name string
}

func NewMetricsObserver(name string) *MetricsObserver {
	return &MetricsObserver{name: name}
}

func (o *MetricsObserver) Name() string {
	return o.name
}

func (o *MetricsObserver) Update(s *subject.Subject) {
	xmetrics.ObserverNotified(o.name)
	xmetrics.ObserverLastState(o.name, s.State())
}
