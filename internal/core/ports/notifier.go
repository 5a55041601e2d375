package ports

import (
	"context"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/core/domain/model/order"
)

// Notifier publishes order-state-change alerts to interested parties.
//
// Notification is fire-and-forget: implementations log and swallow delivery
// failures, and handlers call the notifier only after their transaction has
// committed. A lost notification never aborts a transition.
type Notifier interface {
	// NotifyOrderStatusChanged announces that an order moved to a new status.
	NotifyOrderStatusChanged(ctx context.Context, orderID kernel.UUID, status order.Status)
}
