package rbac

import (
	"net/http"

	"uns-visa/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

// Check lets the frontend ask whether the current user may perform an
// action, so it can hide controls instead of surfacing 403s.
func (h *Handler) Check(c *gin.Context) {
	resource := c.Query("resource")
	action := c.Query("action")
	if resource == "" || action == "" {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "resource and action are required", nil)
		return
	}

	req := EnforceRequest{
		UserID:   c.GetString("user_id"),
		Role:     c.GetString("role"),
		Resource: resource,
		Action:   action,
	}

	allowed, err := h.service.Enforce(req)
	if err != nil {
		h.logger.Error("permission check failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Permission check failed", nil)
		return
	}

	response.Success(c, http.StatusOK, EnforceResponse{Allowed: allowed}, nil)
}
