package clientcompany

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
	companies := r.Group("/client-companies")
	companies.Use(middleware.AuthMiddleware())
	companies.Use(middleware.ContextLogger(logger))
	{
		companies.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "client_company", "read"),
			handler.GetAll,
		)

		companies.GET("/stats",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "client_company", "read"),
			handler.GetStats,
		)

		companies.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "client_company", "read"),
			handler.GetById,
		)

		companies.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "client_company", "create"),
			handler.Create,
		)

		companies.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "client_company", "update"),
			handler.Update,
		)

		companies.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "client_company", "delete"),
			handler.Delete,
		)
	}
}
