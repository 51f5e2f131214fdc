package tracks

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EngineOption is a functional option for configuring an Engine.
type EngineOption func(*Engine) error

// WithLogger sets the logger every container created by the engine logs to.
// Default is a no-op logger.
func WithLogger(l *zap.Logger) EngineOption {
	return func(e *Engine) error {
		if l == nil {
			return errors.New("logger must not be nil")
		}
		e.log = l
		return nil
	}
}

// WithIDGenerator sets the function that issues container ids.
// Default is uuid.New.
func WithIDGenerator(fn func() uuid.UUID) EngineOption {
	return func(e *Engine) error {
		if fn == nil {
			return errors.New("id generator must not be nil")
		}
		e.newID = fn
		return nil
	}
}
