package app

import (
	"context"
	"os"

	"github.com/Ankitkumar028/rider-fleet/internal/auth"
	"github.com/Ankitkumar028/rider-fleet/internal/company"
	"github.com/Ankitkumar028/rider-fleet/internal/messaging/kafka"
	"github.com/Ankitkumar028/rider-fleet/internal/partnership"
	"github.com/Ankitkumar028/rider-fleet/internal/progress"
	"github.com/Ankitkumar028/rider-fleet/internal/rider"
	"github.com/Ankitkumar028/rider-fleet/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure, migrates the schema, registers every
// module's routes and applies the boot seed.
func BuildApp(router *gin.Engine) error {
	db, err := connection.ConnectGORMWithRetry(
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

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(
		&auth.Credential{},
		&company.Company{},
		&rider.RiderProfile{},
		&progress.ProgressRecord{},
		&partnership.Partnership{},
		&kafka.OutboxEvent{},
	); err != nil {
		return err
	}

	if err := registerModules(router, db, rdb, zap.L()); err != nil {
		return err
	}

	return runSeed(context.Background(), db)
}
