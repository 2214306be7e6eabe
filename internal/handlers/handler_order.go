package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/duka-app/duka_backend/internal/core/ports/services"
	"github.com/duka-app/duka_backend/internal/dto"
	"github.com/duka-app/duka_backend/internal/middleware"
)

// orderHandler handles the read-only order routes. Order mutations go
// through the composite order-transaction endpoints so the pair stays
// consistent.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

// registerOrderRoutes registers all order-related routes.
func registerOrderRoutes(rg *gin.RouterGroup, os portssvc.OrderSvcFacade) {
	h := &orderHandler{orderService: os}

	orders := rg.Group("/orders")
	{
		orders.GET("", h.getOrdersByUser)
		orders.GET("/by-date", h.getOrdersByDate)
	}
}

// getOrdersByUser godoc
// @Summary List orders for a customer
// @Description Lists orders resolved by customer ID or phone. An unknown customer yields an empty list.
// @Tags orders
// @Produce json
// @Param customerID query string false "Customer ID"
// @Param phone query string false "Customer phone"
// @Success 200 {object} dto.ListOrdersResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders [get]
func (h *orderHandler) getOrdersByUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.OrdersByUserQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query: " + err.Error()})
		return
	}
	if query.Phone == "" && query.CustomerID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Either phone or customerID must be provided"})
		return
	}

	orders, err := h.orderService.GetOrdersByUser(c.Request.Context(), query)
	if err != nil {
		logger.Error("Failed to list orders", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListOrdersResponse(orders))
}

// getOrdersByDate godoc
// @Summary List orders created on a UTC calendar day
// @Tags orders
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListOrdersResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/by-date [get]
func (h *orderHandler) getOrdersByDate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	dateStr := c.Query("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
		return
	}

	orders, err := h.orderService.GetOrdersByDate(c.Request.Context(), date)
	if err != nil {
		logger.Error("Failed to list orders by date", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListOrdersResponse(orders))
}
