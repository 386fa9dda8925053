package notify

import (
	"log/slog"
)

// LogListener is the current-scope recipient: it records the notification
// in the structured log and forwards it to an optional in-process callback
type LogListener struct {
	logger *slog.Logger
	onDone func(Completion)
}

// NewLogListener creates a listener logging to logger, onDone may be nil
func NewLogListener(logger *slog.Logger, onDone func(Completion)) *LogListener {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogListener{logger: logger, onDone: onDone}
}

func (l *LogListener) OnCompletion(c Completion) {
	l.logger.Info("block completed",
		"type", c.Type,
		"block_id", c.BlockID,
		"score", c.Score,
		"max_score", c.MaxScore,
	)
	if l.onDone != nil {
		l.onDone(c)
	}
}
