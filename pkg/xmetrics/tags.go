package xmetrics

type IMetricsTag interface {
	Tag() []string
}

type metricsTag struct {
	tags []string
}

func (m *metricsTag) Tag() []string {
	return m.tags
}

// subject metrics
type subjectMetrics struct {
	metricsTag
}

func SubjectMetrics(subject string) *subjectMetrics {
	return &subjectMetrics{
		metricsTag: metricsTag{[]string{"subject", subject}},
	}
}

func (s *subjectMetrics) State() IMetricsTag {
	s.tags = append(s.tags, "state")
	return s
}

func (s *subjectMetrics) Notifications() IMetricsTag {
	s.tags = append(s.tags, "notifications")
	return s
}

func (s *subjectMetrics) Observers() IMetricsTag {
	s.tags = append(s.tags, "observers")
	return s
}

// observer metrics
type observerMetrics struct {
	metricsTag
}

func ObserverMetrics(observer string) *observerMetrics {
	return &observerMetrics{
		metricsTag: metricsTag{[]string{"observer", observer}},
	}
}

func (o *observerMetrics) Notified() IMetricsTag {
	o.tags = append(o.tags, "notified")
	return o
}

func (o *observerMetrics) Reacted() IMetricsTag {
	o.tags = append(o.tags, "reacted")
	return o
}

func (o *observerMetrics) LastState() IMetricsTag {
	o.tags = append(o.tags, "lastState")
	return o
}

// error metrics
type errorMetrics struct {
	metricsTag
}

func ErrorMetrics(errType string) *errorMetrics {
	return &errorMetrics{
		metricsTag: metricsTag{[]string{"error", errType}},
	}
}
