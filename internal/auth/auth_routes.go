package auth

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
	group := r.Group("/auth")
	{
		group.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		group.POST("/refresh", middleware.RateLimitByIP(0.5, 5), handler.RefreshToken)

		authed := group.Group("")
		authed.Use(middleware.AuthMiddleware())
		authed.Use(middleware.ContextLogger(logger))
		{
			authed.GET("/me", middleware.RateLimitByUser(2, 5), handler.Me)
			authed.POST("/logout", middleware.RateLimitByUser(2, 5), handler.Logout)
			authed.POST("/change-password", middleware.RateLimitByUser(0.5, 2), handler.ChangePassword)

			users := authed.Group("/users")
			{
				users.GET("",
					middleware.RateLimitByUser(2, 5),
					middleware.RBACAuthorize(rbacService, "user", "manage"),
					handler.ListUsers,
				)
				users.POST("",
					middleware.RateLimitByUser(0.5, 2),
					middleware.RBACAuthorize(rbacService, "user", "manage"),
					handler.Register,
				)
				users.DELETE("/:id",
					middleware.RateLimitByUser(0.5, 2),
					middleware.RBACAuthorize(rbacService, "user", "manage"),
					handler.DeleteUser,
				)
			}
		}
	}
}
