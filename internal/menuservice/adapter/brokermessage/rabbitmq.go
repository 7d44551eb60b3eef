package brokermessage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"smart-menu/internal/config"
	"smart-menu/internal/menuservice/app/core"
	"smart-menu/internal/menuservice/domain/dto"
	"smart-menu/internal/mylogger"
)

const (
	exchange              = "notifications"
	orderCreatedKey       = "orders.created"
	orderStatusChangedKey = "orders.status_changed"
)

// RabbitMQ publishes order notifications to a topic exchange.
type RabbitMQ struct {
	ctx   context.Context
	cfg   config.RabbitMQ
	conn  *amqp.Connection
	ch    *amqp.Channel
	mylog mylogger.Logger
	mu    *sync.Mutex
}

// New creates the RabbitMQ notifier and opens the connection.
func New(ctx context.Context, rabbitmqCfg config.RabbitMQ, mylog mylogger.Logger) (core.INotifier, error) {
	r := &RabbitMQ{
		ctx:   ctx,
		cfg:   rabbitmqCfg,
		mylog: mylog,
		mu:    &sync.Mutex{},
	}
	if err := r.connect(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RabbitMQ) connect() error {
	conn, err := amqp.Dial(fmt.Sprintf("amqp://%s:%s@%s:%s/%s",
		r.cfg.User,
		r.cfg.Password,
		r.cfg.Host,
		r.cfg.Port,
		r.cfg.VHost,
	))
	if err != nil {
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		return err
	}

	if err := ch.Confirm(false); err != nil {
		return err
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return err
	}

	r.conn = conn
	r.ch = ch
	return nil
}

// IsAlive checks connection and channel health.
func (r *RabbitMQ) IsAlive() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conn == nil || r.conn.IsClosed() {
		return core.ErrMBConn
	}
	if r.ch == nil || r.ch.IsClosed() {
		return core.ErrMBCh
	}
	return nil
}

func (r *RabbitMQ) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ch != nil && !r.ch.IsClosed() {
		if err := r.ch.Close(); err != nil {
			return fmt.Errorf("close rabbitmq channel: %v", err)
		}
	}
	if r.conn != nil && !r.conn.IsClosed() {
		if err := r.conn.Close(); err != nil {
			return fmt.Errorf("close rabbitmq connection: %v", err)
		}
	}
	return nil
}

func (r *RabbitMQ) OrderCreated(ctx context.Context, msg dto.OrderCreatedMessage) error {
	return r.publish(ctx, orderCreatedKey, msg)
}

func (r *RabbitMQ) StatusUpdated(ctx context.Context, msg dto.StatusUpdateMessage) error {
	return r.publish(ctx, orderStatusChangedKey, msg)
}

func (r *RabbitMQ) publish(ctx context.Context, routingKey string, payload any) error {
	mylog := r.mylog.Action("push_message").With("routing_key", routingKey)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conn == nil || r.conn.IsClosed() {
		mylog.Warn("connection to rabbitmq is closed, reconnecting")
		if err := r.connect(); err != nil {
			mylog.Error("reconnect failed", err)
			return fmt.Errorf("%w: %v", core.ErrMBConn, err)
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	err = r.ch.PublishWithContext(ctx, exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		mylog.Error("failed to publish notification", err)
		return err
	}

	mylog.Debug("notification published")
	return nil
}
