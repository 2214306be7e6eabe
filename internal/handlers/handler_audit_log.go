package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/duka-app/duka_backend/internal/core/ports/services"
	"github.com/duka-app/duka_backend/internal/dto"
	"github.com/duka-app/duka_backend/internal/middleware"
)

// auditLogHandler exposes the read side of the audit trail.
type auditLogHandler struct {
	auditService portssvc.AuditSvcFacade
}

// registerAuditLogRoutes registers the audit log listing route.
func registerAuditLogRoutes(rg *gin.RouterGroup, as portssvc.AuditSvcFacade) {
	h := &auditLogHandler{auditService: as}

	rg.GET("/audit-logs", h.listAuditLogs)
}

// listAuditLogs godoc
// @Summary List audit events
// @Description Returns a filtered page of audit events newest-first with token-based pagination.
// @Tags audit-logs
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param nextToken query string false "Token from the previous page"
// @Param action query string false "Filter by action"
// @Param affectedCollection query string false "Filter by affected collection"
// @Param performedBy query string false "Filter by actor"
// @Param businessID query string false "Filter by business"
// @Param startDate query string false "Filter from date (YYYY-MM-DD)"
// @Param endDate query string false "Filter to date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListAuditLogsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *auditLogHandler) listAuditLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAuditLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query: " + err.Error()})
		return
	}

	logs, nextToken, err := h.auditService.ListAuditLogs(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list audit logs", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	responses := make([]dto.AuditLogResponse, len(logs))
	for i := range logs {
		responses[i] = dto.ToAuditLogResponse(&logs[i])
	}
	c.JSON(http.StatusOK, dto.ListAuditLogsResponse{
		AuditLogs: responses,
		NextToken: nextToken,
	})
}
