package company

import (
	"github.com/Ankitkumar028/rider-fleet/internal/middleware"
	"github.com/Ankitkumar028/rider-fleet/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes mounts the company surface under the admin group. There is
// deliberately no DELETE route: companies referenced by riders must remain
// resolvable forever.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	companies := r.Group("/companies")
	companies.Use(middleware.AuthMiddleware())
	companies.Use(middleware.ContextLogger(logger))
	{
		companies.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "companies", "read"),
			handler.GetAll,
		)

		companies.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "companies", "create"),
			handler.Create,
		)

		companies.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "companies", "update"),
			handler.Update,
		)
	}
}
