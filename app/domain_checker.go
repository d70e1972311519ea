package app

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/babumoltbot/saasname/app/models"
)

// rdapDomainChecker resolves availability through the public RDAP aggregator:
// a 404 for the domain record means the name is unregistered.
type rdapDomainChecker struct{}

// Check looks up one domain per TLD concurrently. A failed lookup degrades
// to available=false for that TLD; the checker never claims false availability.
func (d *rdapDomainChecker) Check(ctx context.Context, name string, tlds []string) []models.DomainResult {
	label := DomainLabel(name)
	results := make([]models.DomainResult, len(tlds))

	var wg sync.WaitGroup
	for i, tld := range tlds {
		wg.Add(1)
		go func(i int, tld string) {
			defer wg.Done()
			domain := label + tld
			results[i] = models.DomainResult{
				Domain:    domain,
				TLD:       tld,
				Available: d.lookup(ctx, domain),
			}
		}(i, tld)
	}
	wg.Wait()

	return results
}

func (d *rdapDomainChecker) lookup(ctx context.Context, domain string) bool {
	status, err := probeStatus(ctx, "https://rdap.org/domain/"+domain)
	if err != nil {
		log.Warn().Err(err).Str("domain", domain).Msg("rdap lookup failed")
		return false
	}
	return status == http.StatusNotFound
}

// DomainLabel reduces a candidate name to a registrable label: lowercase
// letters and digits only.
func DomainLabel(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
