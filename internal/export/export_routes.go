package export

import (
	"uns-visa/internal/middleware"
	"uns-visa/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	group := r.Group("/export")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.ContextLogger(logger))
	{
		group.GET("/visa-renewal/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "export", "read"),
			handler.ExportVisaRenewal,
		)

		group.GET("/visa-coe/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "export", "read"),
			handler.ExportVisaCOE,
		)

		group.GET("/visa-change/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "export", "read"),
			handler.ExportVisaChange,
		)
	}
}
