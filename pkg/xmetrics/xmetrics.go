package xmetrics

import (
	"github.com/hashicorp/go-metrics"
	"github.com/hashicorp/go-metrics/prometheus"
	"github.com/selectdb/observer_demo/pkg/xerror"
)

func InitGlobal(serviceName string) error {
	sink, err := prometheus.NewPrometheusSink()
	if err != nil {
		return xerror.Wrap(err, xerror.Normal, "init prometheus sink failed")
	}

	if _, err := metrics.NewGlobal(metrics.DefaultConfig(serviceName), sink); err != nil {
		return xerror.Wrap(err, xerror.Normal, "new global metrics failed")
	}

	return nil
}

func AddError(err error) {
	metrics.IncrCounter(ErrorMetrics(xerror.TypeOf(err).String()).Tag(), 1)
}

func StateChanged(subject string, state int) {
	metrics.SetGauge(SubjectMetrics(subject).State().Tag(), float32(state))
}

func Notify(subject string, observers int) {
	metrics.IncrCounter(SubjectMetrics(subject).Notifications().Tag(), 1)
	metrics.SetGauge(SubjectMetrics(subject).Observers().Tag(), float32(observers))
}

func ObserverNotified(observer string) {
	metrics.IncrCounter(ObserverMetrics(observer).Notified().Tag(), 1)
}

func ObserverReacted(observer string) {
	metrics.IncrCounter(ObserverMetrics(observer).Reacted().Tag(), 1)
}

func ObserverLastState(observer string, state int) {
	metrics.SetGauge(ObserverMetrics(observer).LastState().Tag(), float32(state))
}
