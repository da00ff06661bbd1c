package app

import (
	"net/http"
	"path/filepath"

	"github.com/Ankitkumar028/rider-fleet/internal/auth"
	"github.com/Ankitkumar028/rider-fleet/internal/company"
	"github.com/Ankitkumar028/rider-fleet/internal/messaging/kafka"
	"github.com/Ankitkumar028/rider-fleet/internal/partnership"
	"github.com/Ankitkumar028/rider-fleet/internal/progress"
	"github.com/Ankitkumar028/rider-fleet/internal/rbac"
	"github.com/Ankitkumar028/rider-fleet/internal/rider"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(db)
	companyRepo := company.NewRepository(db)
	riderRepo := rider.NewRepository(db)
	progressRepo := progress.NewRepository(db)
	partnershipRepo := partnership.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer(
		filepath.Join("internal", "rbac", "model.conf"),
		filepath.Join("internal", "rbac", "policy.csv"),
	)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Services ---
	authService := auth.NewService(authRepo)
	companyService := company.NewService(companyRepo)
	riderService := rider.NewService(db, riderRepo, authRepo, companyRepo, outboxRepo, rdb)
	progressService := progress.NewService(db, progressRepo, riderRepo, outboxRepo)
	partnershipService := partnership.NewService(partnershipRepo, rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	companyHandler := company.NewHandler(companyService)
	riderHandler := rider.NewHandlerWithRedis(riderService, rdb)
	progressHandler := progress.NewHandlerWithRedis(progressService, rdb)
	partnershipHandler := partnership.NewHandler(partnershipService)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler)

		admin := api.Group("/admin")
		{
			rider.RegisterRoutes(admin, riderHandler, rbacService, rdb, logger)
			company.RegisterRoutes(admin, companyHandler, rbacService, logger)
			progress.RegisterRoutes(admin, progressHandler, rbacService, rdb, logger)
			partnership.RegisterRoutes(admin, partnershipHandler, rbacService, logger)
		}

		portal := api.Group("/rider")
		{
			rider.RegisterPortalRoutes(portal, riderHandler, rbacService, logger)
			progress.RegisterPortalRoutes(portal, progressHandler, rbacService, logger)
		}

		public := api.Group("/public")
		{
			partnership.RegisterPublicRoutes(public, partnershipHandler)
		}

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}

	return nil
}
