package rc

import "time"

// MutationEvent describes a successful settings write for logging.
type MutationEvent struct {
	Key      string // key as given by the caller
	Global   string // owning global when the write was alias-redirected
	Source   string // resolution class: global, cycle, rcparams, special, category
	Value    any
	Duration time.Duration
}

// MutationLogger records settings writes.
type MutationLogger interface {
	LogMutation(MutationEvent)
}

// MutationLoggerFunc adapts a function to MutationLogger.
type MutationLoggerFunc func(MutationEvent)

// LogMutation implements MutationLogger.
func (f MutationLoggerFunc) LogMutation(event MutationEvent) {
	if f != nil {
		f(event)
	}
}

type noopMutationLogger struct{}

func (noopMutationLogger) LogMutation(MutationEvent) {}
