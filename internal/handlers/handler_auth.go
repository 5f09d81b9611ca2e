package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/agentdms/agentdms-backend/internal/apperrors"
	portssvc "github.com/agentdms/agentdms-backend/internal/core/ports/services"
	"github.com/agentdms/agentdms-backend/internal/dto"
	"github.com/agentdms/agentdms-backend/internal/middleware"
	"github.com/agentdms/agentdms-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// authHandler handles authentication related requests.
type authHandler struct {
	authService   portssvc.AuthSvcFacade
	googleService portssvc.GoogleAuthSvcFacade
	isProduction  bool
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(cfg *config.Config, services *portssvc.ServiceContainer) *authHandler {
	return &authHandler{
		authService:   services.Auth,
		googleService: services.GoogleAuth,
		isProduction:  cfg.IsProduction,
	}
}

// registerAuthRoutes sets up the public authentication routes. Login and
// forgot-password share an IP rate limit to slow down guessing.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(cfg, services)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(limitermemory.NewStore(), rate)
	limited := middleware.RateLimit(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", limited, h.login)
		auth.POST("/logout", h.logout)
		auth.POST("/forgot-password", limited, h.forgotPassword)
		auth.POST("/reset-password", h.resetPassword)
		if h.googleService != nil {
			auth.POST("/google", h.googleSignIn)
		}
	}

	// /me tolerates a missing token when the demo identity is enabled, but a
	// presented token is always validated.
	r.GET("/api/v1/me",
		middleware.AuthMiddlewareWithFallback(services.Token, services.Anonymous),
		h.getMe)
}

// login godoc
// @Summary User login
// @Description Authenticates by email/password and returns a signed bearer token embedding roles and permissions.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid email or password"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	resp, err := h.authService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		respondError(c, err, "Login failed")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// logout godoc
// @Summary User logout
// @Description Acknowledges logout. Tokens are stateless, so the client discards its copy; the credential stays valid until expiry.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// forgotPassword godoc
// @Summary Request a password reset
// @Description Starts the reset flow. Responds identically whether or not the email is registered.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Account email"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /auth/forgot-password [post]
func (h *authHandler) forgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	rawToken, err := h.authService.RequestPasswordReset(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err, "Failed to process reset request")
		return
	}
	// Token delivery is normally out-of-band. Outside production the raw
	// token is echoed so the flow can be exercised without a mail sender.
	if !h.isProduction && rawToken != "" {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Info("Password reset token issued", slog.String("email", req.Email))
		c.JSON(http.StatusOK, gin.H{
			"message": "If the account exists, a reset link has been sent",
			"token":   rawToken,
		})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "If the account exists, a reset link has been sent"})
}

// resetPassword godoc
// @Summary Complete a password reset
// @Description Redeems a single-use reset token and installs the new password.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} map[string]string "Invalid or expired reset token"
// @Router /auth/reset-password [post]
func (h *authHandler) resetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := h.authService.CompletePasswordReset(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		respondError(c, err, "Failed to reset password")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password has been reset"})
}

// googleSignIn godoc
// @Summary Sign in with Google
// @Description Exchanges an OAuth authorization code for a first-party bearer token, provisioning the account on first sign-in.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{code=string} true "Authorization code"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Code rejected"
// @Router /auth/google [post]
func (h *authHandler) googleSignIn(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	resp, err := h.googleService.ExchangeCode(c.Request.Context(), req.Code)
	if err != nil {
		respondError(c, err, "Google sign-in failed")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getMe godoc
// @Summary Current identity
// @Description Returns the identity, roles and permissions embedded in the presented token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserClaims
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /me [get]
func (h *authHandler) getMe(c *gin.Context) {
	claims, ok := middleware.GetClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserClaims(claims))
}
