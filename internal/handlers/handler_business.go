package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duka-app/duka_backend/internal/core/domain"
	portssvc "github.com/duka-app/duka_backend/internal/core/ports/services"
	"github.com/duka-app/duka_backend/internal/core/services"
	"github.com/duka-app/duka_backend/internal/dto"
	"github.com/duka-app/duka_backend/internal/middleware"
)

// businessHandler handles HTTP requests related to business accounts.
type businessHandler struct {
	businessService portssvc.BusinessSvcFacade
	auditService    portssvc.AuditSvcFacade
}

// newBusinessHandler creates a new businessHandler.
func newBusinessHandler(bs portssvc.BusinessSvcFacade, as portssvc.AuditSvcFacade) *businessHandler {
	return &businessHandler{
		businessService: bs,
		auditService:    as,
	}
}

// registerBusinessRoutes registers all business-related routes. A business
// may only read and mutate its own account.
func registerBusinessRoutes(rg *gin.RouterGroup, bs portssvc.BusinessSvcFacade, as portssvc.AuditSvcFacade) {
	h := newBusinessHandler(bs, as)

	businesses := rg.Group("/businesses")
	{
		businesses.GET("/:id", h.getBusiness)
		businesses.PUT("/:id", h.updateBusiness)
		businesses.DELETE("/:id", h.deleteBusiness)
	}
}

// getBusiness godoc
// @Summary Get a business by ID
// @Tags businesses
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} dto.BusinessResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{id} [get]
func (h *businessHandler) getBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("id")

	if !h.authorizeSelf(c, businessID) {
		return
	}

	business, err := h.businessService.GetBusiness(c.Request.Context(), businessID)
	if err != nil {
		if errors.Is(err, services.ErrBusinessNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to get business", slog.String("error", err.Error()), slog.String("business_id", businessID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve business"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}

// updateBusiness godoc
// @Summary Update a business
// @Tags businesses
// @Accept json
// @Produce json
// @Param id path string true "Business ID"
// @Param business body dto.UpdateBusinessRequest true "Fields to update"
// @Success 200 {object} dto.BusinessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{id} [put]
func (h *businessHandler) updateBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("id")

	if !h.authorizeSelf(c, businessID) {
		return
	}

	var req dto.UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	business, err := h.businessService.UpdateBusiness(c.Request.Context(), businessID, req)
	if err != nil {
		if errors.Is(err, services.ErrBusinessNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update business", slog.String("error", err.Error()), slog.String("business_id", businessID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update business"})
		return
	}

	h.recordAudit(c, domain.ActionUpdateBusiness, businessID)
	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}

// deleteBusiness godoc
// @Summary Delete a business
// @Tags businesses
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} dto.BusinessResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{id} [delete]
func (h *businessHandler) deleteBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("id")

	if !h.authorizeSelf(c, businessID) {
		return
	}

	deleted, err := h.businessService.DeleteBusiness(c.Request.Context(), businessID)
	if err != nil {
		if errors.Is(err, services.ErrBusinessNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to delete business", slog.String("error", err.Error()), slog.String("business_id", businessID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete business"})
		return
	}

	h.recordAudit(c, domain.ActionDeleteBusiness, businessID)
	c.JSON(http.StatusOK, dto.ToBusinessResponse(deleted))
}

// authorizeSelf rejects the request unless the authenticated business is the
// one addressed by the route.
func (h *businessHandler) authorizeSelf(c *gin.Context, targetID string) bool {
	authenticatedID, ok := middleware.GetBusinessIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return false
	}
	if authenticatedID != targetID {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Business forbidden to access another account", slog.String("target_id", targetID))
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return false
	}
	return true
}

func (h *businessHandler) recordAudit(c *gin.Context, action domain.AuditAction, targetID string) {
	businessID, _ := middleware.GetBusinessIDFromContext(c)
	h.auditService.Record(c.Request.Context(), domain.AuditLog{
		Action:             action,
		PerformedBy:        businessID,
		AffectedCollection: "businesses",
		Details:            map[string]any{"businessId": targetID},
		IPAddress:          c.ClientIP(),
		UserAgent:          c.Request.UserAgent(),
		BusinessID:         businessID,
	})
}
