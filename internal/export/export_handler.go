package export

import (
	"fmt"
	"net/http"

	"uns-visa/internal/shared/apperror"
	"uns-visa/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("export.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("export.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) ExportVisaRenewal(c *gin.Context) {
	h.stream(c, FormRenewal)
}

func (h *Handler) ExportVisaCOE(c *gin.Context) {
	h.stream(c, FormCOE)
}

func (h *Handler) ExportVisaChange(c *gin.Context) {
	h.stream(c, FormChange)
}

func (h *Handler) stream(c *gin.Context, formType string) {
	form, err := h.service.GenerateForm(c.Request.Context(), formType, c.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("export failed",
			zap.String("form_type", formType),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", form.Filename))
	c.Status(http.StatusOK)

	if err := form.File.Write(c.Writer); err != nil {
		// Headers are already out; all we can do is log.
		h.logger.Error("streaming workbook failed", zap.Error(err))
	}
}
