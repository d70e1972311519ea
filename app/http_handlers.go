package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/babumoltbot/saasname/app/config"
	"github.com/babumoltbot/saasname/app/models"
	"github.com/babumoltbot/saasname/auth"
)

// Health is a public health check endpoint.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

type generateRequest struct {
	Idea string `json:"idea"`
}

// GenerateNames handles POST /generate.
func GenerateNames(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 90*time.Second)
	defer cancel()

	result, err := svc.Generate(ctx, user, req.Idea)
	if err != nil {
		respondOrchestratorError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

type validateRequest struct {
	Name         string `json:"name"`
	GenerationID string `json:"generationId"`
	Industry     string `json:"industry"`
}

// ValidateName handles POST /validate.
func ValidateName(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	result, err := svc.Validate(ctx, user, req.Name, req.GenerationID, req.Industry)
	if err != nil {
		respondOrchestratorError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetGenerations handles GET /generations, newest first.
func GetGenerations(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	generations, err := ListGenerations(ctx, user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("failed to list generations")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load generations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"generations": generations})
}

type checkDomainRequest struct {
	Name string `json:"name"`
	TLD  string `json:"tld"`
}

// CheckDomain handles POST /check-domain: one TLD, live lookup, cache write.
func CheckDomain(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	var req checkDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	check, err := svc.CheckDomain(ctx, user, req.Name, req.TLD)
	if err != nil {
		if errors.Is(err, ErrTLDNotInTier) {
			c.JSON(http.StatusForbidden, gin.H{"error": "tld not included in your tier", "upgrade": user.Tier == models.TierFree})
			return
		}
		respondOrchestratorError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"domain": check})
}

// GetCachedDomainChecks handles GET /check-domain?name=: cache reads only.
func GetCachedDomainChecks(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks, err := svc.CachedDomainChecks(ctx, user, c.Query("name"))
	if err != nil {
		respondOrchestratorError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"domains": checks})
}

// Session returns authentication state and a tier/quota summary.
func Session(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	user, err := currentUser(c.Request.Context(), claims)
	if err != nil {
		log.Error().Err(err).Str("sub", claims.Subject).Msg("failed to load user for session")
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user": gin.H{
			"id":                   user.ID,
			"email":                user.Email,
			"name":                 user.Name,
			"tier":                 user.Tier,
			"generationsUsed":      user.GenerationsUsed,
			"generationsLimit":     user.GenerationsLimit,
			"generationsRemaining": user.GenerationsRemaining(),
			"namesPerGeneration":   user.NamesPerGeneration,
		},
	})
}

type interestRequest struct {
	Feature string `json:"feature"`
}

// RecordInterest handles POST /interest.
func RecordInterest(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	var req interestRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Feature == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "feature is required"})
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Error().Err(err).Msg("failed to load config")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record interest"})
		return
	}

	if err := RecordFeatureInterest(c.Request.Context(), cfg, user, req.Feature); err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("failed to record interest")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record interest"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// requireUser resolves the calling user from verified claims, responding
// itself on failure.
func requireUser(c *gin.Context) (models.User, bool) {
	claims, ok := auth.ClaimsFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
		return models.User{}, false
	}

	user, err := currentUser(c.Request.Context(), claims)
	if err != nil {
		log.Error().Err(err).Str("sub", claims.Subject).Msg("failed to load user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return models.User{}, false
	}
	return user, true
}

// respondOrchestratorError maps the orchestration error taxonomy onto HTTP
// status codes.
func respondOrchestratorError(c *gin.Context, err error) {
	var validationErr ValidationError
	var quotaErr QuotaError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &quotaErr):
		c.JSON(http.StatusForbidden, gin.H{"error": "Generation limit reached", "upgrade": quotaErr.Upgrade})
	case errors.Is(err, ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again in a minute."})
	case errors.Is(err, ErrEmptyGeneration):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Name generation failed, please try again"})
	default:
		log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
