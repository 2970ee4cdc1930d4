package rabbitmq

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"gudang/internal/models"

	amqp "github.com/streadway/amqp"
)

// QueueName is the durable queue carrying inventory change events.
const QueueName = "inventory_events"

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	mu      sync.Mutex // serializes Publish; amqp channels are not safe for concurrent use
	log     *slog.Logger
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ, opens a channel and declares the event queue.
func NewClient(cfg Config, log *slog.Logger) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := declareQueue(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	log.Info("rabbitmq connected", "queue", QueueName)
	return &Client{
		conn:    conn,
		channel: ch,
		log:     log,
	}, nil
}

func declareQueue(ch *amqp.Channel) (amqp.Queue, error) {
	q, err := ch.QueueDeclare(
		QueueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return amqp.Queue{}, fmt.Errorf("failed to declare %s: %w", QueueName, err)
	}
	return q, nil
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors while closing RabbitMQ client: %v", errs)
	}
	return nil
}

// PublishItemEvent publishes event as JSON to the inventory event queue.
func (c *Client) PublishItemEvent(event models.ItemEvent) error {
	body, err := EncodeItemEvent(event)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	err = c.channel.Publish(
		"",        // default exchange
		QueueName, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Type:         string(event.Type),
			MessageId:    event.ID,
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish item event: %w", err)
	}
	return nil
}

// ConsumeItemEvents starts a goroutine delivering decoded events to handler.
// Messages are acked when handler returns nil. Undecodable messages are
// dropped and handler errors are requeued.
func (c *Client) ConsumeItemEvents(handler func(models.ItemEvent) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	msgs, err := c.channel.Consume(
		QueueName,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			event, err := DecodeItemEvent(msg.Body)
			if err != nil {
				c.log.Warn("dropping malformed item event", "delivery_tag", msg.DeliveryTag, "error", err)
				if nackErr := msg.Nack(false, false); nackErr != nil {
					c.log.Error("failed to nack message", "delivery_tag", msg.DeliveryTag, "error", nackErr)
				}
				continue
			}
			if err := handler(event); err != nil {
				c.log.Error("failed to handle item event", "id", event.ID, "error", err)
				if nackErr := msg.Nack(false, true); nackErr != nil {
					c.log.Error("failed to nack message", "delivery_tag", msg.DeliveryTag, "error", nackErr)
				}
				continue
			}
			if ackErr := msg.Ack(false); ackErr != nil {
				c.log.Error("failed to ack message", "delivery_tag", msg.DeliveryTag, "error", ackErr)
			}
		}
	}()

	return nil
}

// EncodeItemEvent marshals event into the wire format used on the queue.
func EncodeItemEvent(event models.ItemEvent) ([]byte, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item event: %w", err)
	}
	return body, nil
}

// DecodeItemEvent parses a queue message body.
func DecodeItemEvent(body []byte) (models.ItemEvent, error) {
	var event models.ItemEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return models.ItemEvent{}, fmt.Errorf("failed to unmarshal item event: %w", err)
	}
	if event.ID == "" || event.Type == "" {
		return models.ItemEvent{}, fmt.Errorf("item event is missing id or type")
	}
	return event, nil
}
