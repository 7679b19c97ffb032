package rabbitmq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	RecordStoredQueue = "record.stored"
)

// RabbitMQClient обертка для работы с RabbitMQ
type RabbitMQClient struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func URL(host, port, username, password, vHost string) string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/%s",
		username,
		password,
		host,
		port,
		vHost,
	)
}

func NewRabbitMQClient(host string, port string, username string, password string, vHost string) (*RabbitMQClient, error) {
	conn, err := amqp.Dial(URL(host, port, username, password, vHost))
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	// Records are permanent, so their events survive broker restarts.
	_, err = ch.QueueDeclare(
		RecordStoredQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", RecordStoredQueue, err)
	}

	return &RabbitMQClient{Conn: conn, Ch: ch}, nil
}

// Close закрывает соединение с RabbitMQ
func (c *RabbitMQClient) Close() {
	if c.Ch != nil {
		c.Ch.Close()
	}
	if c.Conn != nil {
		c.Conn.Close()
	}
}
