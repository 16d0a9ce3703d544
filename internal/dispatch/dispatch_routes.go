package dispatch

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
	group := r.Group("/dispatch")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.ContextLogger(logger))
	{
		group.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "dispatch", "create"),
			handler.Assign,
		)

		group.GET("/employee/:employee_id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "dispatch", "read"),
			handler.ListByEmployee,
		)

		group.POST("/:id/end",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "dispatch", "update"),
			handler.End,
		)
	}
}
