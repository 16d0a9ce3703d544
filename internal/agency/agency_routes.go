package agency

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"uns-visa/internal/middleware"
	"uns-visa/internal/rbac"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	group := r.Group("/agency")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.ContextLogger(logger))
	{
		group.GET("",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "agency", "read"),
			handler.Get,
		)

		// updating the profile is an admin action
		group.PUT("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "agency", "update"),
			handler.Save,
		)
	}
}
