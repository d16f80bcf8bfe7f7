package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/rso-shop/stock-service/internal/domain"
)

const topic = "stock-events"

// KafkaProducer publishes catalog and stock change events.
type KafkaProducer struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewKafkaProducer(brokers string, logger *zap.Logger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}

	return &KafkaProducer{
		writer: writer,
		logger: logger,
	}
}

func (p *KafkaProducer) PublishProductCreated(ctx context.Context, tenant string, rec domain.ProductRecord) error {
	event := ProductCreatedEvent{
		EventID:   uuid.NewString(),
		Tenant:    tenant,
		ProductID: rec.ProductID,
		SellerID:  rec.SellerID,
		Name:      rec.Name,
		Price:     rec.Price,
		Timestamp: time.Now().UTC(),
	}
	return p.publish(ctx, event.EventID, event)
}

func (p *KafkaProducer) PublishStockUpdated(ctx context.Context, tenant string, rec domain.StockRecord) error {
	event := StockUpdatedEvent{
		EventID:     uuid.NewString(),
		Tenant:      tenant,
		ProductID:   rec.ProductID,
		StockAmount: rec.StockAmount,
		Timestamp:   time.Now().UTC(),
	}
	return p.publish(ctx, event.EventID, event)
}

func (p *KafkaProducer) publish(ctx context.Context, key string, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal event", zap.Error(err))
		return err
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: eventBytes,
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish message",
			zap.String("event_id", key),
			zap.Error(err))
		return err
	}

	p.logger.Info("Event published",
		zap.String("event_id", key))

	return nil
}

func (p *KafkaProducer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
