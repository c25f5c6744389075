package utils

import (
	"context"
	"time"
)

const DefaultNotifyTimeout = 10 * time.Second

// WithNotifyTimeout bounds best-effort side work such as owner email
// notifications, which run detached from the request context.
func WithNotifyTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultNotifyTimeout)
}
