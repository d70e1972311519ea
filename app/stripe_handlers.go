package app

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/babumoltbot/saasname/app/config"
	"github.com/babumoltbot/saasname/app/models"
)

// CreateCheckoutSession starts a Stripe Checkout Session for the
// authenticated user's Pro upgrade.
func CreateCheckoutSession(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	if user.Tier == models.TierPro {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Already on Pro"})
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Error().Err(err).Msg("stripe checkout config load failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "billing not configured"})
		return
	}

	frontendURL := strings.TrimRight(cfg.Stripe.FrontendURL, "/")
	if cfg.Stripe.SecretKey == "" || frontendURL == "" {
		log.Error().Bool("secret", cfg.Stripe.SecretKey != "").Bool("frontend_url", frontendURL != "").Msg("missing Stripe config")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "billing not configured"})
		return
	}

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(user.Email),
		Metadata: map[string]string{
			"user_id": user.ID,
		},
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("usd"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String("SaaSName Pro"),
						Description: stripe.String("50 generations, all TLDs, social handles, trademark screening, competitor analysis"),
					},
					UnitAmount: stripe.Int64(2900),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(frontendURL + "/generate?upgraded=true"),
		CancelURL:  stripe.String(frontendURL + "/generate"),
	}

	sess, err := session.New(params)
	if err != nil {
		log.Error().Err(err).Msg("stripe checkout session failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": sess.URL})
}

// StripeWebhook handles Stripe events and updates user tiers. A signature
// failure is rejected outright with no state mutation.
func StripeWebhook(c *gin.Context) {
	const maxBodyBytes = int64(65536)
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		log.Error().Err(err).Msg("stripe webhook read failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	sigHeader := c.GetHeader("Stripe-Signature")
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Error().Err(err).Msg("stripe webhook config load failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "webhook not configured"})
		return
	}

	endpointSecret := cfg.Stripe.WebhookSecret
	if endpointSecret == "" {
		log.Error().Msg("stripe webhook secret missing")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "webhook not configured"})
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		body,
		sigHeader,
		endpointSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		},
	)
	if err != nil {
		log.Warn().Err(err).Msg("stripe webhook signature failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "signature verification failed"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			log.Error().Err(err).Msg("stripe session unmarshal failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session payload"})
			return
		}

		userID := sess.Metadata["user_id"]
		if userID == "" {
			log.Error().Msg("stripe session missing user_id metadata")
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing user id"})
			return
		}
		customerID := ""
		if sess.Customer != nil {
			customerID = sess.Customer.ID
		}

		if err := upgradeUserToPro(c.Request.Context(), userID, customerID); err != nil {
			log.Error().Err(err).Str("user_id", userID).Msg("stripe tier upgrade failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
			return
		}
	case "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			log.Error().Err(err).Msg("stripe subscription unmarshal failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subscription payload"})
			return
		}
		customerID := ""
		if sub.Customer != nil {
			customerID = sub.Customer.ID
		}
		if customerID == "" {
			log.Error().Msg("stripe subscription missing customer id")
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing customer id"})
			return
		}

		if err := downgradeUserByStripeCustomer(c.Request.Context(), customerID); err != nil {
			log.Error().Err(err).Str("customer_id", customerID).Msg("stripe tier downgrade failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
			return
		}
	default:
		// Intentionally ignore unhandled events.
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
