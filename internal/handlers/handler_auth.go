package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/duka-app/duka_backend/internal/apperrors"
	"github.com/duka-app/duka_backend/internal/core/domain"
	portssvc "github.com/duka-app/duka_backend/internal/core/ports/services"
	"github.com/duka-app/duka_backend/internal/core/services"
	"github.com/duka-app/duka_backend/internal/dto"
	"github.com/duka-app/duka_backend/internal/middleware"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	businessService portssvc.BusinessSvcFacade
	keyringService  portssvc.KeyringSvcFacade
	auditService    portssvc.AuditSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(bs portssvc.BusinessSvcFacade, ks portssvc.KeyringSvcFacade, as portssvc.AuditSvcFacade) *AuthHandler {
	return &AuthHandler{
		businessService: bs,
		keyringService:  ks,
		auditService:    as,
	}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// registerAuthRoutes sets up the public routes for authentication.
func registerAuthRoutes(rg *gin.Engine, svc *portssvc.ServiceContainer) {
	h := NewAuthHandler(svc.BusinessSvc, svc.KeyringSvc, svc.AuditSvc)

	// Rate limit: 5 login attempts per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/register", middleware.RateLimit(ipLimiter), h.Register)
	}
}

// Login godoc
// @Summary Business login
// @Description Authenticates a business by phone and password, returning a JWT signed with the current key.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	business, err := h.businessService.Authenticate(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Login failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Login failed"})
		return
	}

	token, err := h.keyringService.IssueToken(c.Request.Context(), business)
	if err != nil {
		logger.Error("Failed to issue token", slog.String("error", err.Error()), slog.String("business_id", business.BusinessID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to issue token"})
		return
	}

	h.auditService.Record(c.Request.Context(), domain.AuditLog{
		Action:             domain.ActionLogin,
		PerformedBy:        business.BusinessID,
		AffectedCollection: "businesses",
		Details:            map[string]any{"businessId": business.BusinessID},
		IPAddress:          c.ClientIP(),
		UserAgent:          c.Request.UserAgent(),
		BusinessID:         business.BusinessID,
	})

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:      token,
		BusinessID: business.BusinessID,
	})
}

// Register godoc
// @Summary Register a business
// @Description Creates a new business account.
// @Tags auth
// @Accept json
// @Produce json
// @Param business body dto.CreateBusinessRequest true "Business details"
// @Success 201 {object} dto.BusinessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	business, err := h.businessService.RegisterBusiness(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to register business", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register business"})
		return
	}

	h.auditService.Record(c.Request.Context(), domain.AuditLog{
		Action:             domain.ActionCreateBusiness,
		PerformedBy:        business.BusinessID,
		AffectedCollection: "businesses",
		Details:            map[string]any{"businessId": business.BusinessID},
		IPAddress:          c.ClientIP(),
		UserAgent:          c.Request.UserAgent(),
		BusinessID:         business.BusinessID,
	})

	c.JSON(http.StatusCreated, dto.ToBusinessResponse(business))
}
