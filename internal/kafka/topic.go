package kafka

import (
	"fmt"
	"iex-companies/internal/config"
	"net"
	"strconv"

	kafkaGo "github.com/segmentio/kafka-go"
)

// EnsureTopic creates the configured topic through the controller broker.
// Creating a topic that already exists is not an error.
func EnsureTopic(cfg config.KafkaConfig) error {
	conn, err := kafkaGo.Dial("tcp", cfg.BrokerURL)
	if err != nil {
		return fmt.Errorf("failed to dial Kafka: %w", err)
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		return fmt.Errorf("failed to get Kafka controller: %w", err)
	}

	controllerConn, err := kafkaGo.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return fmt.Errorf("failed to connect to Kafka controller: %w", err)
	}
	defer controllerConn.Close()

	err = controllerConn.CreateTopics(kafkaGo.TopicConfig{
		Topic:             cfg.Topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	})
	if err != nil {
		return fmt.Errorf("failed to create Kafka topic %q: %w", cfg.Topic, err)
	}
	return nil
}
