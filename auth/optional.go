package auth

import (
	"github.com/gin-gonic/gin"
)

// Optional verifies a bearer token when one is present but never rejects
// the request. Handlers decide what an anonymous caller may see.
func Optional(verifier *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if AuthDisabled() {
			claims := &Claims{
				Subject: "local-dev",
				Email:   "local-dev@example.test",
				Issuer:  "local",
				Raw:     map[string]any{"sub": "local-dev", "email": "local-dev@example.test"},
			}
			c.Request = c.Request.WithContext(WithClaims(c.Request.Context(), claims))
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" || verifier == nil {
			c.Next()
			return
		}

		token, ok := extractBearerToken(header)
		if !ok {
			c.Next()
			return
		}

		if claims, err := verifier.Verify(token); err == nil {
			c.Request = c.Request.WithContext(WithClaims(c.Request.Context(), claims))
		}
		c.Next()
	}
}
