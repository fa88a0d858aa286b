package events

import (
	"github.com/sirupsen/logrus"
)

var _ Sink = (*LogrusSink)(nil)

// LogrusSink writes events as structured log entries.
type LogrusSink struct {
	logger *logrus.Entry
	level  logrus.Level
	// per event overrides, e.g. undetected columns are worth a warning
	levels map[string]logrus.Level
}

func NewLogrusSink(logger *logrus.Logger, level logrus.Level) *LogrusSink {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogrusSink{
		logger: logrus.NewEntry(logger).WithField("component", "hrload-engine"),
		level:  level,
		levels: map[string]logrus.Level{},
	}
}

// WithLevel logs the given event at level instead of the default one.
func (s *LogrusSink) WithLevel(event string, level logrus.Level) *LogrusSink {
	s.levels[event] = level
	return s
}

func (s *LogrusSink) Emit(event string, fields Fields) {
	level := s.level
	if l, ok := s.levels[event]; ok {
		level = l
	}
	s.logger.WithFields(logrus.Fields(fields)).Log(level, event)
}
