package importsync

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"uns-visa/internal/middleware"
	"uns-visa/internal/rbac"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	imports := r.Group("/import")
	imports.Use(middleware.AuthMiddleware())
	imports.Use(middleware.ContextLogger(logger))
	{
		// imports are heavy and must not run twice on a client retry
		imports.POST("/factories",
			middleware.RateLimitByUser(0.05, 1),
			middleware.Idempotency(rdb, logger),
			middleware.RBACAuthorize(rbacService, "import", "create"),
			handler.ImportFactories,
		)

		imports.POST("/excel",
			middleware.RateLimitByUser(0.05, 1),
			middleware.Idempotency(rdb, logger),
			middleware.RBACAuthorize(rbacService, "import", "create"),
			handler.ImportExcel,
		)
	}
}
