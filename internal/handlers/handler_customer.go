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

// customerHandler handles HTTP requests related to customers.
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
	auditService    portssvc.AuditSvcFacade
}

// newCustomerHandler creates a new customerHandler.
func newCustomerHandler(cs portssvc.CustomerSvcFacade, as portssvc.AuditSvcFacade) *customerHandler {
	return &customerHandler{
		customerService: cs,
		auditService:    as,
	}
}

// registerCustomerRoutes registers all customer-related routes.
func registerCustomerRoutes(rg *gin.RouterGroup, cs portssvc.CustomerSvcFacade, as portssvc.AuditSvcFacade) {
	h := newCustomerHandler(cs, as)

	customers := rg.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("/search", h.findCustomer)
		customers.PATCH("/:id/phone", h.updateCustomerPhone)
		customers.DELETE("/:id", h.deleteCustomer)
	}
}

// createCustomer godoc
// @Summary Create a new customer
// @Description Creates a customer keyed by a unique phone number.
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create customer request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicatePhone) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create customer", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create customer"})
		return
	}

	businessID, _ := middleware.GetBusinessIDFromContext(c)
	h.auditService.Record(c.Request.Context(), domain.AuditLog{
		Action:             domain.ActionCreateCustomer,
		PerformedBy:        businessID,
		AffectedCollection: "customers",
		Details:            map[string]any{"customerId": customer.CustomerID},
		IPAddress:          c.ClientIP(),
		UserAgent:          c.Request.UserAgent(),
		BusinessID:         businessID,
	})

	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// findCustomer godoc
// @Summary Find a customer by phone or name
// @Description Resolves a customer from a single value: digits are treated as a phone number, anything else as a name.
// @Tags customers
// @Produce json
// @Param q query string true "Phone number or name"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/search [get]
func (h *customerHandler) findCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	value := c.Query("q")
	if value == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Query parameter 'q' is required"})
		return
	}

	customer, err := h.customerService.FindCustomerByPhoneOrName(c.Request.Context(), value)
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to find customer", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to find customer"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// updateCustomerPhone godoc
// @Summary Update a customer's phone number
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param phone body dto.UpdateCustomerPhoneRequest true "New phone number"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id}/phone [patch]
func (h *customerHandler) updateCustomerPhone(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("id")

	var req dto.UpdateCustomerPhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	customer, err := h.customerService.UpdateCustomerPhone(c.Request.Context(), customerID, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrDuplicatePhone):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update customer phone", slog.String("error", err.Error()), slog.String("customer_id", customerID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update customer"})
		}
		return
	}

	businessID, _ := middleware.GetBusinessIDFromContext(c)
	h.auditService.Record(c.Request.Context(), domain.AuditLog{
		Action:             domain.ActionUpdateCustomer,
		PerformedBy:        businessID,
		AffectedCollection: "customers",
		Details:            map[string]any{"customerId": customerID},
		IPAddress:          c.ClientIP(),
		UserAgent:          c.Request.UserAgent(),
		BusinessID:         businessID,
	})

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// deleteCustomer godoc
// @Summary Delete a customer
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [delete]
func (h *customerHandler) deleteCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("id")

	deleted, err := h.customerService.DeleteCustomer(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to delete customer", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete customer"})
		return
	}

	businessID, _ := middleware.GetBusinessIDFromContext(c)
	h.auditService.Record(c.Request.Context(), domain.AuditLog{
		Action:             domain.ActionDeleteCustomer,
		PerformedBy:        businessID,
		AffectedCollection: "customers",
		Details:            map[string]any{"customerId": customerID},
		IPAddress:          c.ClientIP(),
		UserAgent:          c.Request.UserAgent(),
		BusinessID:         businessID,
	})

	c.JSON(http.StatusOK, dto.ToCustomerResponse(deleted))
}
