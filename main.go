package main

import (
	"context"
	"log"

	"platecost/config"
	"platecost/internal/service"
	"platecost/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(config.TopicComponentChanges, config.ConsumerGroup)
	defer reader.Close()

	writer := config.NewKafkaWriter(config.TopicCostUpdates)
	defer writer.Close()

	repository := storage.NewPostgresRepository(db)
	cache := storage.NewRedisCostCache(rdb, config.CostCacheTTL())
	publisher := storage.NewKafkaCostPublisher(writer)

	costs := service.NewCostService(repository, repository, cache, publisher)
	consumer := service.NewConsumer(reader, costs)

	log.Println("Costing worker starting")
	consumer.Start(context.Background())
}
