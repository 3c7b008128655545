package adapters

import (
	"go.uber.org/zap"
)

// LogNotifier implements ports.Notifier by logging.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Copied logs a successful copy.
func (n *LogNotifier) Copied(text string) {
	n.logger.Info("Copied to clipboard", zap.Int("length", len(text)))
}

// CopyFailed logs a failed copy.
func (n *LogNotifier) CopyFailed(err error) {
	n.logger.Warn("Could not copy to clipboard", zap.Error(err))
}
