package app

import (
	"context"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/babumoltbot/saasname/app/models"
)

type socialPlatform struct {
	name       string
	profileURL string // handle appended
}

var socialPlatforms = []socialPlatform{
	{name: "twitter", profileURL: "https://x.com/"},
	{name: "linkedin", profileURL: "https://www.linkedin.com/company/"},
	{name: "instagram", profileURL: "https://www.instagram.com/"},
}

// profileSocialChecker probes public profile URLs; a 404 means the handle
// is free. Failures degrade to available=false.
type profileSocialChecker struct{}

func (s *profileSocialChecker) Check(ctx context.Context, name string) []models.SocialResult {
	handle := DomainLabel(name)
	results := make([]models.SocialResult, len(socialPlatforms))

	var wg sync.WaitGroup
	for i, platform := range socialPlatforms {
		wg.Add(1)
		go func(i int, p socialPlatform) {
			defer wg.Done()
			available := false
			status, err := probeStatus(ctx, p.profileURL+handle)
			if err != nil {
				log.Warn().Err(err).Str("platform", p.name).Str("handle", handle).Msg("social probe failed")
			} else {
				available = status == http.StatusNotFound
			}
			results[i] = models.SocialResult{
				Platform:  p.name,
				Handle:    "@" + handle,
				Available: available,
			}
		}(i, platform)
	}
	wg.Wait()

	return results
}
