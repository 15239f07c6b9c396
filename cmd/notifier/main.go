package main

import (
	"github.com/Misenpai/prweb/internal/app"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := app.RunNotifier(logger.Named("notifier")); err != nil {
		logger.Fatal("notifier exited", zap.Error(err))
	}
}
