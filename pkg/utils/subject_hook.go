package utils

import (
	"github.com/modern-go/gls"
	"github.com/sirupsen/logrus"
)

const SubjectField = "subject"

// SubjectHook copies the goroutine local subject name into every log entry.
type SubjectHook struct {
	Field  string
	levels []logrus.Level
}

func (hook *SubjectHook) Levels() []logrus.Level {
	return hook.levels
}

func (hook *SubjectHook) Fire(entry *logrus.Entry) error {
	if _, ok := entry.Data[hook.Field]; ok {
		return nil
	}

	name := gls.Get(hook.Field)
	if name != nil {
		entry.Data[hook.Field] = name
	}
	return nil
}

func NewSubjectHook(levels ...logrus.Level) *SubjectHook {
	hook := SubjectHook{
		Field:  SubjectField,
		levels: levels,
	}
	if len(hook.levels) == 0 {
		hook.levels = logrus.AllLevels
	}

	return &hook
}

// BindSubject resets the gls of the current goroutine and stores the subject name.
func BindSubject(name string) {
	gls.ResetGls(gls.GoID(), map[interface{}]interface{}{})
	gls.Set(SubjectField, name)
}

// UnbindSubject drops the gls of the current goroutine.
func UnbindSubject() {
	gls.DeleteGls(gls.GoID())
}
