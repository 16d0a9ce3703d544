package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"uns-visa/internal/clientcompany"
	"uns-visa/internal/employee"
	"uns-visa/internal/importsync"
	"uns-visa/internal/shared/apperror"
	"uns-visa/internal/shared/connection"
)

func main() {
	excelPath := flag.String("excel", "", "path to the worker roster workbook")
	sheet := flag.String("sheet", importsync.DefaultSheet, "worksheet name")
	factoryDir := flag.String("factories", "", "directory of factory JSON documents")
	flag.Parse()

	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if *excelPath == "" && *factoryDir == "" {
		logger.Fatal("nothing to do: pass -excel and/or -factories")
	}

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	var factories []importsync.FactoryDoc
	if *factoryDir != "" {
		factories, err = importsync.ReadFactoryDir(*factoryDir, logger)
		if err != nil {
			logger.Fatal("read factory documents failed", zap.Error(err))
		}
	}

	var rows []importsync.Row
	if *excelPath != "" {
		rows, err = importsync.ReadEmployeeSheet(*excelPath, *sheet, logger)
		if err != nil {
			logger.Fatal("read worker roster failed", zap.Error(err))
		}
	}

	employeeRepo := employee.NewRepository(gormDB)
	companyRepo := clientcompany.NewRepository(gormDB)
	reconciler := importsync.NewReconciler(employeeRepo, companyRepo, logger)
	runner := importsync.NewRunner(reconciler, logger)

	summary, err := runner.Run(context.Background(), factories, rows)
	if err != nil {
		logger.Fatal("import aborted", zap.Error(err))
	}

	logger.Info("import finished",
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
	)
	for _, recErr := range summary.Errors {
		logger.Warn("record failed",
			zap.String("key", recErr.Key),
			zap.String("error", recErr.Error),
		)
	}
	if summary.Failed > 0 {
		os.Exit(1)
	}
}
