// Package app wires shared HTTP routes for both local and Lambda execution.
package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/babumoltbot/saasname/auth"
)

// NewRouter builds the shared HTTP router for both local and Lambda execution.
func NewRouter() (*gin.Engine, error) {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	router.GET("/health", Health)
	router.POST("/api/stripe/webhook", StripeWebhook)

	verifier, err := auth.NewVerifierFromEnv()
	if err != nil && !auth.AuthDisabled() {
		return nil, err
	}

	// Session reports anonymous callers instead of rejecting them.
	router.GET("/session", auth.Optional(verifier), Session)

	protected := router.Group("/")
	protected.Use(auth.Middleware(verifier, auth.MiddlewareConfig{
		OnAuthenticated: func(c *gin.Context, claims *auth.Claims) error {
			return UpsertUserFromClaims(c.Request.Context(), claims)
		},
	}))
	protected.POST("/generate", GenerateNames)
	protected.POST("/validate", ValidateName)
	protected.GET("/generations", GetGenerations)
	protected.POST("/check-domain", CheckDomain)
	protected.GET("/check-domain", GetCachedDomainChecks)
	protected.POST("/interest", RecordInterest)
	protected.POST("/api/billing/create-checkout-session", CreateCheckoutSession)

	return router, nil
}
