package app

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"uns-visa/internal/agency"
	"uns-visa/internal/auth"
	"uns-visa/internal/clientcompany"
	"uns-visa/internal/dispatch"
	"uns-visa/internal/employee"
	"uns-visa/internal/export"
	"uns-visa/internal/importsync"
	"uns-visa/internal/messaging/kafka"
	"uns-visa/internal/middleware"
	"uns-visa/internal/ocr"
	"uns-visa/internal/rbac"
	"uns-visa/internal/rbac/rbac_http"
	"uns-visa/internal/shared/counter"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	router.Use(middleware.RequestID())

	// --- Repositories ---
	agencyRepo := agency.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	companyRepo := clientcompany.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	dispatchRepo := dispatch.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService(logger)
	if err != nil {
		return err
	}

	// --- Services ---
	agencyService := agency.NewService(agencyRepo, logger)
	authService := auth.NewService(authRepo, logger)
	companyService := clientcompany.NewService(companyRepo, rdb, logger)
	dispatchService := dispatch.NewService(dispatchRepo, employeeRepo, companyRepo, logger)
	employeeService := employee.NewServiceWithOutbox(gormDB, employeeRepo, counterRepo, outboxRepo, rdb, logger)
	exportService := export.NewService(employeeRepo, agencyRepo, dispatchRepo, logger)
	ocrService := ocr.NewService(ocr.NewVisionClient(logger), employeeRepo, logger)

	syncLogger := logger.Named("importsync")
	reconciler := importsync.NewReconciler(employeeRepo, companyRepo, syncLogger)
	runner := importsync.NewRunner(reconciler, syncLogger)

	// --- Handlers ---
	agencyHandler := agency.NewHandler(agencyService, logger)
	authHandler := auth.NewHandler(authService, logger)
	companyHandler := clientcompany.NewHandler(companyService, logger)
	dispatchHandler := dispatch.NewHandler(dispatchService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	exportHandler := export.NewHandler(exportService, logger)
	importHandler := importsync.NewHandler(runner, logger)
	ocrHandler := ocr.NewHandler(ocrService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		agency.RegisterRoutes(api, agencyHandler, rbacService, logger)
		auth.RegisterRoutes(api, authHandler, rbacService, logger)
		clientcompany.RegisterRoutes(api, companyHandler, rbacService, logger)
		dispatch.RegisterRoutes(api, dispatchHandler, rbacService, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		export.RegisterRoutes(api, exportHandler, rbacService, logger)
		importsync.RegisterRoutes(api, importHandler, rbacService, rdb, logger)
		ocr.RegisterRoutes(api, ocrHandler, rbacService, logger)
		rbac_http.RegisterRoutes(api, rbacHandler, logger)
	}

	return nil
}
