package brokermessage

import (
	"context"

	"smart-menu/internal/menuservice/app/core"
	"smart-menu/internal/menuservice/domain/dto"
	"smart-menu/internal/mylogger"
)

// LogNotifier stands in for the message broker when RabbitMQ is not
// configured; notifications end up in the service log only.
type LogNotifier struct {
	mylog mylogger.Logger
}

func NewLogNotifier(mylog mylogger.Logger) core.INotifier {
	return &LogNotifier{mylog: mylog}
}

func (n *LogNotifier) OrderCreated(_ context.Context, msg dto.OrderCreatedMessage) error {
	n.mylog.Action("order_created_notification").Info(
		"New order",
		"order_id", msg.OrderID,
		"customer_name", msg.CustomerName,
		"total", msg.Total,
		"item_count", msg.ItemCount,
	)
	return nil
}

func (n *LogNotifier) StatusUpdated(_ context.Context, msg dto.StatusUpdateMessage) error {
	n.mylog.Action("status_update_notification").Info(
		"Order status changed",
		"order_id", msg.OrderID,
		"old_status", msg.OldStatus,
		"new_status", msg.NewStatus,
	)
	return nil
}

func (n *LogNotifier) Close() error {
	return nil
}
