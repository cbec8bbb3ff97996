package events_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"gopedidos/internal/domain"
	"gopedidos/internal/pkg/events"
	"gopedidos/internal/pkg/logger"
)

func TestParseBrokers(t *testing.T) {
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, events.ParseBrokers(" k1:9092, ,k2:9092,"))
	assert.Empty(t, events.ParseBrokers(""))
}

func TestNewPublisher_DisabledWithoutBrokers(t *testing.T) {
	p := events.NewPublisher("", "orders", logger.NewNop())

	assert.IsType(t, events.NopPublisher{}, p)
	assert.NoError(t, p.PublishOrderTransitioned(context.Background(), domain.OrderTransitioned{OrderID: "x"}))
	assert.NoError(t, p.Close())
}

func TestNewPublisher_KafkaWhenConfigured(t *testing.T) {
	p := events.NewPublisher("localhost:9092", "orders", logger.NewNop())

	assert.IsType(t, &events.KafkaPublisher{}, p)
	assert.NoError(t, p.Close())
}
