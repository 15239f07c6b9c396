package app

import (
	"fmt"
	"os"

	"github.com/Misenpai/prweb/internal/shared/connection"
	"github.com/Misenpai/prweb/internal/upstream"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// BuildApp wires every module onto the router. Redis and Kafka are
// optional: without REDIS_ADDR the holiday cache is skipped, without
// KAFKA_BROKER audit events are not emitted.
func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	baseURL := os.Getenv("UPSTREAM_BASE_URL")
	if baseURL == "" {
		return fmt.Errorf("UPSTREAM_BASE_URL is required")
	}

	client := upstream.NewClient(baseURL, nil)

	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		var err error
		rdb, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return fmt.Errorf("connecting redis: %w", err)
		}
	} else {
		logger.Warn("REDIS_ADDR not set, holiday cache disabled")
	}

	var writer *kafkago.Writer
	if broker := os.Getenv("KAFKA_BROKER"); broker != "" {
		var err error
		writer, err = connection.ConnectKafkaWithRetry(broker, 5)
		if err != nil {
			return fmt.Errorf("connecting kafka: %w", err)
		}
	} else {
		logger.Warn("KAFKA_BROKER not set, audit events disabled")
	}

	return registerModules(router, logger, client, rdb, writer)
}
