package app

import (
	"github.com/Misenpai/prweb/internal/authz"
	"github.com/Misenpai/prweb/internal/calendar"
	"github.com/Misenpai/prweb/internal/dashboard"
	"github.com/Misenpai/prweb/internal/fieldtrip"
	"github.com/Misenpai/prweb/internal/middleware"
	"github.com/Misenpai/prweb/internal/notification"
	"github.com/Misenpai/prweb/internal/roster"
	"github.com/Misenpai/prweb/internal/upstream"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func registerModules(
	router *gin.Engine,
	logger *zap.Logger,
	client *upstream.Client,
	rdb *redis.Client,
	writer *kafkago.Writer,
) error {
	enforcer, err := authz.NewEnforcer()
	if err != nil {
		return err
	}

	var publisher notification.EventPublisher
	if writer != nil {
		publisher = notification.NewKafkaEventPublisher(writer)
	}

	rosterService := roster.NewService(client)
	holidayService := calendar.NewHolidayService(client, rdb)
	relay := notification.NewRelay(client, publisher, logger)
	fieldTripService := fieldtrip.NewService()

	handler := dashboard.NewHandler(rosterService, holidayService, relay, fieldTripService)

	api := router.Group("/api/v1")
	api.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.RateLimitByIP(rate.Limit(20), 40),
	)

	dashboard.RegisterRoutes(api, handler, enforcer)

	return nil
}
