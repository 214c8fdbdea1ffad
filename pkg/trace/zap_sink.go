package trace

import (
	"go.uber.org/zap"
)

type ZapSink struct {
	logger *zap.Logger
}

func NewZapSink(logger *zap.Logger) *ZapSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapSink{logger: logger}
}

func (s *ZapSink) Emit(event Event) {
	s.logger.Info(event.Message,
		zap.String("subject", event.Subject),
		zap.String("source", event.Source),
		zap.String("kind", string(event.Kind)),
		zap.Int("state", event.State))
}

func (s *ZapSink) Sync() error {
	return s.logger.Sync()
}
