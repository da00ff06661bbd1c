package rider

import (
	"github.com/Ankitkumar028/rider-fleet/internal/middleware"
	"github.com/Ankitkumar028/rider-fleet/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	riders := r.Group("/riders")
	riders.Use(middleware.AuthMiddleware())
	riders.Use(middleware.ContextLogger(logger))
	{
		riders.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "riders", "read"),
			handler.List,
		)

		riders.GET("/export",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "riders", "export"),
			handler.ExportCSV,
		)

		riders.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "riders", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		riders.PUT("/:id",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "riders", "update"),
			handler.Update,
		)
	}

	stats := r.Group("/stats")
	stats.Use(middleware.AuthMiddleware())
	stats.Use(middleware.ContextLogger(logger))
	{
		stats.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "stats", "read"),
			handler.Stats,
		)
	}
}

// RegisterPortalRoutes mounts the rider self-service profile view.
func RegisterPortalRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	r.GET("/me",
		middleware.AuthMiddleware(),
		middleware.ContextLogger(logger),
		middleware.RoleMiddleware("rider"),
		middleware.RBACAuthorize(rbacService, "profile", "read"),
		middleware.RateLimitByUser(3, 10),
		handler.Me,
	)
}
