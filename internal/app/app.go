package app

import (
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"uns-visa/internal/shared/connection"
)

// BuildApp connects the infrastructure and registers every module's routes
// on the router. Kafka is not dialed here: the API writes events to the
// outbox table and the relay worker owns the broker connection.
func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	return registerModules(router, gormDB, redisClient, logger)
}
