package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/babumoltbot/saasname/auth"
)

// newTestRouter wires the handlers the way the production router does, with a
// middleware that injects pre-verified claims instead of a JWKS verifier.
func newTestRouter(t *testing.T, claims *auth.Claims) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if claims != nil {
			c.Request = c.Request.WithContext(auth.WithClaims(c.Request.Context(), claims))
		}
		c.Next()
	})

	r.GET("/health", Health)
	r.GET("/session", Session)
	r.POST("/generate", GenerateNames)
	r.POST("/validate", ValidateName)
	r.GET("/generations", GetGenerations)
	r.POST("/check-domain", CheckDomain)
	r.GET("/check-domain", GetCachedDomainChecks)
	return r
}

func testClaims() *auth.Claims {
	return &auth.Claims{
		Subject: "auth|test-user",
		Email:   "founder@example.test",
	}
}

// withStubServices swaps the package services for the test's lifetime.
func withStubServices(t *testing.T) *Services {
	t.Helper()
	prev := svc
	s := newTestServices()
	svc = s
	t.Cleanup(func() { svc = prev })
	return s
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	withStubServices(t)
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestGenerateEndpoint(t *testing.T) {
	withStubServices(t)
	r := newTestRouter(t, testClaims())

	w := doJSON(t, r, http.MethodPost, "/generate",
		`{"idea":"A tool that helps consultants schedule LinkedIn posts"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp GenerateResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Names) != 5 {
		t.Fatalf("got %d names, want 5 for free tier", len(resp.Names))
	}
	if resp.GenerationsRemaining != 2 {
		t.Fatalf("generationsRemaining = %d, want 2", resp.GenerationsRemaining)
	}
	for i, n := range resp.Names {
		if n.BrandScore.Overall < 0 || n.BrandScore.Overall > 100 {
			t.Fatalf("name %d: overall score %d out of range", i, n.BrandScore.Overall)
		}
	}
}

func TestRespondOrchestratorErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err        error
		wantStatus int
	}{
		{ValidationError{Message: "bad input"}, http.StatusBadRequest},
		{QuotaError{Limit: 3, Used: 3, Upgrade: true}, http.StatusForbidden},
		{ErrRateLimited, http.StatusTooManyRequests},
		{ErrEmptyGeneration, http.StatusBadGateway},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		respondOrchestratorError(c, tc.err)
		if w.Code != tc.wantStatus {
			t.Fatalf("%v: status = %d, want %d", tc.err, w.Code, tc.wantStatus)
		}
	}

	// Quota exhaustion on the free tier carries the upgrade hint.
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondOrchestratorError(c, QuotaError{Limit: 3, Used: 3, Upgrade: true})
	var resp struct {
		Upgrade bool `json:"upgrade"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Upgrade {
		t.Fatalf("quota response should set upgrade for free tier")
	}
}

func TestGenerateEndpointShortIdea(t *testing.T) {
	withStubServices(t)
	r := newTestRouter(t, testClaims())

	w := doJSON(t, r, http.MethodPost, "/generate", `{"idea":"too short"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGenerateEndpointInvalidBody(t *testing.T) {
	withStubServices(t)
	r := newTestRouter(t, testClaims())

	w := doJSON(t, r, http.MethodPost, "/generate", `{"idea":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGenerateEndpointUnauthenticated(t *testing.T) {
	withStubServices(t)
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodPost, "/generate",
		`{"idea":"A tool that helps consultants schedule LinkedIn posts"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestGenerateEndpointRateLimited(t *testing.T) {
	s := withStubServices(t)
	r := newTestRouter(t, testClaims())

	body := `{"idea":"A tool that helps consultants schedule LinkedIn posts"}`
	for i := 0; i < s.Limits.GeneratePerMinute; i++ {
		w := doJSON(t, r, http.MethodPost, "/generate", body)
		// The per-request user starts fresh without a DB, so only the
		// limiter carries state across calls.
		if w.Code != http.StatusOK {
			t.Fatalf("call %d: status = %d, body = %s", i+1, w.Code, w.Body.String())
		}
	}

	w := doJSON(t, r, http.MethodPost, "/generate", body)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
}

func TestValidateEndpointFreeTier(t *testing.T) {
	withStubServices(t)
	r := newTestRouter(t, testClaims())

	w := doJSON(t, r, http.MethodPost, "/validate",
		`{"name":"CalendarIQ","generationId":"gen-1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp ValidateResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Domains) != 1 || resp.Domains[0].Domain != "calendariq.com" {
		t.Fatalf("domains = %+v, want only calendariq.com", resp.Domains)
	}
	if !resp.TierLocked.SocialHandles {
		t.Fatalf("tierLocked.socialHandles should be true on free tier")
	}
	if resp.Socials != nil || resp.Trademark != nil || resp.Competitors != nil {
		t.Fatalf("gated sections should be null on free tier: %s", w.Body.String())
	}
}

func TestValidateEndpointMissingFields(t *testing.T) {
	withStubServices(t)
	r := newTestRouter(t, testClaims())

	w := doJSON(t, r, http.MethodPost, "/validate", `{"name":"CalendarIQ"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCheckDomainEndpointTierGate(t *testing.T) {
	withStubServices(t)
	r := newTestRouter(t, testClaims())

	w := doJSON(t, r, http.MethodPost, "/check-domain", `{"name":"CalendarIQ","tld":".io"}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	var resp struct {
		Upgrade bool `json:"upgrade"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Upgrade {
		t.Fatalf("free-tier gate response should set upgrade")
	}

	w = doJSON(t, r, http.MethodPost, "/check-domain", `{"name":"CalendarIQ","tld":".com"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestCachedDomainChecksEndpoint(t *testing.T) {
	withStubServices(t)
	r := newTestRouter(t, testClaims())

	w := doJSON(t, r, http.MethodGet, "/check-domain?name=CalendarIQ", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/check-domain", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing name: status = %d, want 400", w.Code)
	}
}

func TestGenerationsEndpoint(t *testing.T) {
	withStubServices(t)
	r := newTestRouter(t, testClaims())

	w := doJSON(t, r, http.MethodGet, "/generations", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Generations []json.RawMessage `json:"generations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestSessionEndpoint(t *testing.T) {
	withStubServices(t)

	t.Run("anonymous", func(t *testing.T) {
		r := newTestRouter(t, nil)
		w := doJSON(t, r, http.MethodGet, "/session", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var resp struct {
			Authenticated bool `json:"authenticated"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Authenticated {
			t.Fatalf("anonymous session should report authenticated=false")
		}
	})

	t.Run("authenticated", func(t *testing.T) {
		r := newTestRouter(t, testClaims())
		w := doJSON(t, r, http.MethodGet, "/session", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var resp struct {
			Authenticated bool `json:"authenticated"`
			User          struct {
				Tier                 string `json:"tier"`
				GenerationsLimit     int    `json:"generationsLimit"`
				GenerationsRemaining int    `json:"generationsRemaining"`
			} `json:"user"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if !resp.Authenticated {
			t.Fatalf("session should report authenticated=true")
		}
		if resp.User.Tier != "free" || resp.User.GenerationsLimit != 3 {
			t.Fatalf("user summary = %+v, want free tier with limit 3", resp.User)
		}
	})
}
