package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"gopedidos/internal/domain"
	"gopedidos/internal/pkg/logger"
)

// Publisher publica eventos de pedidos.
type Publisher interface {
	PublishOrderTransitioned(ctx context.Context, event domain.OrderTransitioned) error
	Close() error
}

// ParseBrokers converte a lista CSV de brokers, ignorando entradas vazias.
func ParseBrokers(brokersCSV string) []string {
	brokers := []string{}
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// NewPublisher devolve um publicador Kafka, ou um no-op quando não há brokers.
func NewPublisher(brokersCSV, topic string, log logger.Logger) Publisher {
	brokers := ParseBrokers(brokersCSV)
	if len(brokers) == 0 || topic == "" {
		log.Info("Kafka desabilitado; eventos de pedido não serão publicados.", nil)
		return NopPublisher{}
	}
	log.Info("Publicador Kafka configurado.", map[string]interface{}{"brokers": brokers, "topic": topic})
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
		logger: log,
	}
}

// KafkaPublisher grava eventos JSON num tópico, chaveados pelo ID do pedido.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger logger.Logger
}

// PublishOrderTransitioned grava o evento; a chave mantém a ordem por pedido.
func (p *KafkaPublisher) PublishOrderTransitioned(ctx context.Context, event domain.OrderTransitioned) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
		Time:  time.Now().UTC(),
	})
}

// Close fecha o writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher descarta eventos.
type NopPublisher struct{}

func (NopPublisher) PublishOrderTransitioned(context.Context, domain.OrderTransitioned) error {
	return nil
}

func (NopPublisher) Close() error { return nil }
