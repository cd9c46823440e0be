package notifier

import (
	"context"

	"newsradar/internal/domain/entity"
)

// NoOpNotifier silently accepts every notification. The pipeline always has
// a Notifier, so disabling notifications never needs a nil check.
type NoOpNotifier struct{}

// NewNoOpNotifier creates a NoOpNotifier.
func NewNoOpNotifier() *NoOpNotifier { return &NoOpNotifier{} }

// NotifyArticle implements Notifier and does nothing.
func (n *NoOpNotifier) NotifyArticle(context.Context, *entity.Article) error { return nil }
