package service

import (
	"context"
	"encoding/json"
	"log"

	"platecost/internal/domain"

	"github.com/segmentio/kafka-go"
)

// Consumer reads component-change events and drives the eager recompute of
// every dependent cost.
type Consumer struct {
	Reader *kafka.Reader
	Costs  CostServiceInterface
}

func NewConsumer(reader *kafka.Reader, costs CostServiceInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Costs:  costs,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting cost recompute consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.ChangeEvent
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessChange(ctx, msg)
	}
}

func (c *Consumer) ProcessChange(ctx context.Context, msg domain.ChangeEvent) {
	switch msg.Type {
	case domain.ChangePriceUpdated, domain.ChangeLinesEdited, domain.ChangeYieldUpdated:
	default:
		return
	}

	log.Printf("Processing change: type=%s component=%s:%d", msg.Type, msg.Kind, msg.ID)

	changed := domain.ComponentRef{Kind: msg.Kind, ID: msg.ID}
	if err := c.Costs.RecomputeClosure(ctx, changed); err != nil {
		log.Printf("Error recomputing closure for %s: %v", changed, err)
		return
	}

	log.Printf("Successfully recomputed costs depending on %s", changed)
}
