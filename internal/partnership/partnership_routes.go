package partnership

import (
	"github.com/Ankitkumar028/rider-fleet/internal/middleware"
	"github.com/Ankitkumar028/rider-fleet/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	partnerships := r.Group("/partnerships")
	partnerships.Use(middleware.AuthMiddleware())
	partnerships.Use(middleware.ContextLogger(logger))
	{
		partnerships.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "partnerships", "read"),
			handler.List,
		)
		partnerships.POST("",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "partnerships", "create"),
			handler.Create,
		)
		partnerships.PUT("/:id",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "partnerships", "update"),
			handler.Update,
		)
		partnerships.DELETE("/:id",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "partnerships", "delete"),
			handler.Delete,
		)
	}
}

// RegisterPublicRoutes mounts the unauthenticated marketing list.
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/partnerships", middleware.RateLimitByIP(5, 20), handler.PublicList)
}
