package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"iex-companies/internal/config"
	"iex-companies/internal/models"

	kafkaGo "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkaGo.Message) error
	Close() error
}

// Publisher announces each seeded company on a topic, keyed by symbol.
type Publisher struct {
	w      messageWriter
	logger *zap.Logger
}

func NewPublisher(cfg config.KafkaConfig, logger *zap.Logger) *Publisher {
	return &Publisher{
		w: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(cfg.BrokerURL),
			Topic:                  cfg.Topic,
			Balancer:               &kafkaGo.Hash{},
			RequiredAcks:           kafkaGo.RequireOne,
			AllowAutoTopicCreation: true,
		},
		logger: logger,
	}
}

func (p *Publisher) Publish(ctx context.Context, company models.Company) error {
	value, err := json.Marshal(company)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", company.Symbol, err)
	}

	err = p.w.WriteMessages(ctx, kafkaGo.Message{
		Key:   []byte(company.Symbol),
		Value: value,
	})
	if err != nil {
		return err
	}
	p.logger.Debug("published company", zap.String("symbol", company.Symbol))
	return nil
}

func (p *Publisher) Close() error {
	return p.w.Close()
}
