package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Misenpai/prweb/internal/notification"
	"github.com/Misenpai/prweb/internal/shared/connection"
	"github.com/Misenpai/prweb/internal/upstream"

	"go.uber.org/zap"
)

// RunNotifier runs the background poller that watches the upstream for
// pending HR data requests and mirrors them onto Kafka. It uses a service
// token rather than a forwarded user credential, since no request is in
// flight when it polls.
func RunNotifier(logger *zap.Logger) error {
	baseURL := os.Getenv("UPSTREAM_BASE_URL")
	if baseURL == "" {
		return fmt.Errorf("UPSTREAM_BASE_URL is required")
	}
	token := os.Getenv("PI_SERVICE_TOKEN")
	if token == "" {
		return fmt.Errorf("PI_SERVICE_TOKEN is required")
	}
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	writer, err := connection.ConnectKafkaWithRetry(broker, 5)
	if err != nil {
		return fmt.Errorf("connecting kafka: %w", err)
	}
	defer writer.Close()

	interval := 10 * time.Second
	if raw := os.Getenv("NOTIFY_POLL_INTERVAL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid NOTIFY_POLL_INTERVAL: %w", err)
		}
		interval = parsed
	}

	client := upstream.NewClient(baseURL, nil)
	relay := notification.NewRelay(client, notification.NewKafkaEventPublisher(writer), logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit
		logger.Info("shutdown signal received", zap.String("signal", sig.String()))
		cancel()
	}()

	relay.Run(ctx, upstream.TokenCredential(token), interval)
	return nil
}
