package events

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Connection wraps a RabbitMQ connection.
type Connection struct {
	conn *amqp.Connection
}

func Dial(url string) (*Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}
	return &Connection{conn: conn}, nil
}

func (c *Connection) Channel() (*amqp.Channel, error) {
	return c.conn.Channel()
}

func (c *Connection) Close() error {
	if c.conn == nil || c.conn.IsClosed() {
		return nil
	}
	return c.conn.Close()
}
