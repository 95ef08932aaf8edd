package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"

	"platecost/internal/domain"
)

type KafkaCostPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaCostPublisher(writer *kafka.Writer) *KafkaCostPublisher {
	return &KafkaCostPublisher{Writer: writer}
}

func (p *KafkaCostPublisher) PublishCostUpdate(ctx context.Context, update domain.CostUpdate) error {
	payload, _ := json.Marshal(update)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(string(update.Kind) + ":" + strconv.Itoa(update.ID)),
		Value: payload,
	})
}
