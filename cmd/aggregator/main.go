package main

import (
	"context"
	"log"

	"city-explorer/internal/config"
	"city-explorer/internal/service"
	"city-explorer/internal/storage"
)

func main() {
	cfg := config.Load()
	if cfg.KafkaBroker == "" {
		log.Fatal("KAFKA_BROKER must be set for the aggregator")
	}
	if cfg.RedisAddr == "" {
		log.Fatal("REDIS_HOST must be set for the aggregator")
	}

	rdb := config.MustInitRedis(cfg.RedisAddr)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg.KafkaBroker, "ratings", "agg-svc-consumer")
	defer reader.Close()

	consumer := service.NewConsumer(reader, storage.NewLeaderboard(rdb))
	consumer.Start(context.Background())
}
