package events

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// MessageHandler processes one message body. A returned error dead-letters
// the message.
type MessageHandler func(ctx context.Context, body []byte) error

type ConsumerConfig struct {
	Queue         string
	Exchange      string
	RoutingKey    string
	PrefetchCount int
}

// Consumer reads a durable queue bound to the event exchange. Failed messages
// go to <queue>.dlq.
type Consumer struct {
	logs    *zap.SugaredLogger
	channel *amqp.Channel
	cfg     ConsumerConfig
	handler MessageHandler
}

func NewConsumer(logger *zap.SugaredLogger, conn *Connection, cfg ConsumerConfig, handler MessageHandler) (*Consumer, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if cfg.PrefetchCount <= 0 {
		cfg.PrefetchCount = 10
	}
	if cfg.RoutingKey == "" {
		cfg.RoutingKey = cfg.Queue
	}
	dlq := cfg.Queue + ".dlq"

	if err := ch.Qos(cfg.PrefetchCount, 0, false); err != nil {
		ch.Close()
		return nil, fmt.Errorf("set qos: %w", err)
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, exchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(dlq, true, false, false, false, nil); err != nil {
		ch.Close()
		return nil, fmt.Errorf("declare dlq: %w", err)
	}

	args := amqp.Table{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": dlq,
	}
	if _, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, args); err != nil {
		ch.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(cfg.Queue, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		ch.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	return &Consumer{
		logs:    logger,
		channel: ch,
		cfg:     cfg,
		handler: handler,
	}, nil
}

// Start consumes until ctx is cancelled or the channel closes.
func (c *Consumer) Start(ctx context.Context) error {
	msgs, err := c.channel.Consume(
		c.cfg.Queue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	c.logs.Infow("consumer started", "queue", c.cfg.Queue, "prefetch", c.cfg.PrefetchCount)

	go func() {
		for {
			select {
			case <-ctx.Done():
				c.logs.Infow("consumer stopping", "queue", c.cfg.Queue)
				return
			case msg, ok := <-msgs:
				if !ok {
					c.logs.Warnw("consumer channel closed", "queue", c.cfg.Queue)
					return
				}
				Handle(ctx, c.logs, c.handler, msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) Close() error {
	return c.channel.Close()
}

// Handle runs handler on msg and acknowledges it, or rejects it to the
// dead-letter queue when the handler fails.
func Handle(ctx context.Context, logger *zap.SugaredLogger, handler MessageHandler, msg amqp.Delivery) {
	if err := handler(ctx, msg.Body); err != nil {
		logger.Errorw("failed to process message",
			"error", err,
			"routing_key", msg.RoutingKey,
			"message_id", msg.MessageId)

		if nackErr := msg.Nack(false, false); nackErr != nil {
			logger.Errorw("failed to nack message", "error", nackErr)
		}
		return
	}

	if ackErr := msg.Ack(false); ackErr != nil {
		logger.Errorw("failed to ack message", "error", ackErr)
	}
}
