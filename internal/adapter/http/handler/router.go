package handler

import (
	"biodiversity-credits/internal/adapter/http/middleware"
	redisStore "biodiversity-credits/internal/adapter/storage/redis"
	"biodiversity-credits/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	TokenSvc       ports.TokenService
	Registry       ports.CreditRegistry
	Lifecycle      ports.LifecycleService
	ReportingSvc   ports.ReportingService
	DecryptionSvc  ports.DecryptionService
	NewSigner      SignerFactory
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(64 << 10))

	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	v1.POST("/auth/login", rl("auth_login"), authHandler.Login)

	creditHandler := NewCreditHandler(deps.Registry, deps.Lifecycle, deps.ReportingSvc, deps.DecryptionSvc, deps.NewSigner)
	credits := v1.Group("/credits")
	{
		credits.GET("", rl("credits_read"), creditHandler.List)
		credits.GET("/stats", rl("credits_read"), creditHandler.Stats)
		credits.GET("/:id", rl("credits_read"), creditHandler.Get)
	}

	// --- JWT-authenticated routes (wallet sessions) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	v1.GET("/session", jwtAuth, authHandler.GetSession)

	owned := v1.Group("/credits", jwtAuth)
	{
		owned.POST("", rl("credits_write"), creditHandler.Create)
		owned.POST("/:id/verify", rl("credits_write"), creditHandler.Verify)
		owned.POST("/:id/reject", rl("credits_write"), creditHandler.Reject)
		owned.POST("/:id/decrypt", rl("credits_reveal"), creditHandler.Decrypt)
	}

	return r
}
