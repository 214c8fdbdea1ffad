package trace

import (
	log "github.com/sirupsen/logrus"
)

// LogrusSink writes events as info entries with the event attributes as fields.
type LogrusSink struct {
	logger log.FieldLogger
}

// NewLogrusSink returns a sink on logger, the standard logger if nil.
func NewLogrusSink(logger log.FieldLogger) *LogrusSink {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &LogrusSink{logger: logger}
}

func (s *LogrusSink) Emit(event Event) {
	s.logger.WithFields(log.Fields{
		"subject": event.Subject,
		"source":  event.Source,
		"kind":    string(event.Kind),
		"state":   event.State,
	}).Info(event.Message)
}
