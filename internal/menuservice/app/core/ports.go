package core

import (
	"context"

	"smart-menu/internal/menuservice/domain/dto"
)

// INotifier publishes order events to the seller-facing side.
type INotifier interface {
	OrderCreated(ctx context.Context, msg dto.OrderCreatedMessage) error
	StatusUpdated(ctx context.Context, msg dto.StatusUpdateMessage) error
	Close() error
}
