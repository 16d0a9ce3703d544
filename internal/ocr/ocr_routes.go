package ocr

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
	group := r.Group("/ocr")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.ContextLogger(logger))
	{
		group.POST("/scan",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "ocr", "create"),
			handler.Scan,
		)

		group.POST("/import",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "ocr", "create"),
			handler.Import,
		)
	}
}
