package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/services"
	"github.com/BDF-Tech/BDF-Mobile/internal/dto"
	"github.com/BDF-Tech/BDF-Mobile/internal/middleware"
	"github.com/BDF-Tech/BDF-Mobile/internal/platform/config"
	"github.com/BDF-Tech/BDF-Mobile/internal/utils"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authService portssvc.AuthSvc
	jwtSecret   string
	jwtDuration time.Duration
	jwtIssuer   string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvc, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: as,
		jwtSecret:   cfg.JWTSecret,
		jwtDuration: cfg.JWTExpiryDuration,
		jwtIssuer:   cfg.JWTIssuer,
	}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, authService portssvc.AuthSvc) {
	h := NewAuthHandler(authService, cfg)

	// 5 login attempts per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.Login)
	}
}

// Login godoc
// @Summary Portal user login
// @Description Authenticates a portal user and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.StatusResponse
// @Failure 401 {object} dto.StatusResponse
// @Failure 500 {object} dto.StatusResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusResponse{Status: "error", Message: "Invalid request body"})
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn("Login rejected", slog.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, dto.StatusResponse{Status: "unauthorized", Message: "Invalid email or password"})
		return
	}

	token, err := utils.GenerateJWT(user.Email, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger.Error("Failed to sign JWT", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.StatusResponse{Status: "error", Message: "Something went wrong"})
		return
	}

	logger.Info("Portal user logged in", slog.String("email", user.Email))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, FullName: user.FullName})
}
