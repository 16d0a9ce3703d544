package importsync

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"uns-visa/internal/shared/response"
)

// DefaultSheet is the worker master sheet name in the office's workbook.
const DefaultSheet = "DBGenzaiX"

type Handler struct {
	runner *Runner
	logger *zap.Logger
}

func NewHandler(runner *Runner, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("importsync.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("importsync.handler")
	}
	return &Handler{runner: runner, logger: l}
}

// ImportFactories accepts a JSON array of factory documents and reconciles
// them as client companies.
func (h *Handler) ImportFactories(c *gin.Context) {
	var docs []FactoryDoc
	if err := c.ShouldBindJSON(&docs); err != nil {
		h.logger.Warn("http import factories bad payload", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	summary, err := h.runner.Run(c.Request.Context(), docs, nil)
	if err != nil {
		h.logger.Error("factory import aborted", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "IMPORT_ABORTED", "Import aborted before completion", summary)
		return
	}

	response.Success(c, http.StatusOK, summary, nil)
}

// ImportExcel accepts a multipart upload of the worker master workbook and
// reconciles its rows as worker records.
func (h *Handler) ImportExcel(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "A file upload is required", err.Error())
		return
	}
	sheet := c.DefaultPostForm("sheet", DefaultSheet)

	tmp, err := os.CreateTemp("", "import-*"+filepath.Ext(file.Filename))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Could not store upload", nil)
		return
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Could not store upload", nil)
		return
	}

	rows, err := ReadEmployeeSheet(tmpPath, sheet, h.logger)
	if err != nil {
		h.logger.Warn("http import excel unreadable workbook",
			zap.String("sheet", sheet),
			zap.Error(err),
		)
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Could not read the workbook", err.Error())
		return
	}

	summary, err := h.runner.Run(c.Request.Context(), nil, rows)
	if err != nil {
		h.logger.Error("excel import aborted", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "IMPORT_ABORTED", "Import aborted before completion", summary)
		return
	}

	h.logger.Info("excel import finished",
		zap.String("file", file.Filename),
		zap.String("sheet", sheet),
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
	)
	response.Success(c, http.StatusOK, summary, nil)
}
