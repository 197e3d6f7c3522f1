package handler

import (
	"net/http"

	"biodiversity-credits/internal/adapter/http/dto"
	"biodiversity-credits/internal/adapter/http/middleware"
	"biodiversity-credits/internal/core/domain"
	"biodiversity-credits/internal/core/ports"
	"biodiversity-credits/pkg/apperror"
	"biodiversity-credits/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles wallet login and session endpoints.
type AuthHandler struct {
	authSvc ports.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authSvc ports.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	sig, err := domain.ParseSignature(req.Signature)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), ports.LoginRequest{
		Address:   req.Address,
		Timestamp: req.Timestamp,
		Nonce:     req.Nonce,
		Signature: sig,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAddress, req.Address)
	response.OK(c, dto.LoginResponse{
		Token:   result.Token,
		Expiry:  result.Expiry.Unix(),
		Session: result.Session,
	})
}

// GetSession handles GET /api/v1/session. It returns the challenge the
// wallet must sign to reveal a score.
func (h *AuthHandler) GetSession(c *gin.Context) {
	addr, ok := middleware.Address(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	session, ok := middleware.Session(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	response.OK(c, dto.SessionResponse{
		Address:   addr,
		Session:   session,
		Challenge: session.ChallengeMessage(),
		ExpiresAt: session.ExpiresAt().Unix(),
	})
}

// HealthCheck handles GET /health: pings every registry backend and
// auxiliary store.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
