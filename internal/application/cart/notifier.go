package cart

import "go.uber.org/zap"

// Notifier receives the single outcome notification each cart mutation
// produces: success or failure, never both, never none.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// LogNotifier writes outcome notifications to the structured log. The
// gateway layer surfaces outcomes to callers through response payloads;
// this keeps an operator-visible trail as well.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a notifier backed by the given logger
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Success implements Notifier
func (n *LogNotifier) Success(message string) {
	n.logger.Info("cart notification", zap.String("message", message))
}

// Error implements Notifier
func (n *LogNotifier) Error(message string) {
	n.logger.Warn("cart notification", zap.String("message", message))
}

var _ Notifier = (*LogNotifier)(nil)
