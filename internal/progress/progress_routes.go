package progress

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
	records := r.Group("/progress")
	records.Use(middleware.AuthMiddleware())
	records.Use(middleware.ContextLogger(logger))
	{
		records.POST("",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "progress", "create"),
			middleware.Idempotency(rdb),
			handler.Record,
		)
	}
}

// RegisterPortalRoutes mounts the rider self-service ledger view.
func RegisterPortalRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	r.GET("/progress",
		middleware.AuthMiddleware(),
		middleware.ContextLogger(logger),
		middleware.RoleMiddleware("rider"),
		middleware.RBACAuthorize(rbacService, "progress", "read"),
		middleware.RateLimitByUser(3, 10),
		handler.SelfView,
	)
}
