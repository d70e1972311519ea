// Package models defines tiers, quotas and the shapes exchanged with callers.
package models

import "fmt"

type Tier string

const (
	TierFree Tier = "free"
	TierPro  Tier = "pro"
)

// TierFeatures flags which validation checks a tier unlocks.
type TierFeatures struct {
	SocialHandles      bool `json:"socialHandles"`
	TrademarkScreening bool `json:"trademarkScreening"`
	CompetitorAnalysis bool `json:"competitorAnalysis"`
	BrandScorePreview  bool `json:"brandScorePreview"`
	BrandScoreFull     bool `json:"brandScoreFull"`
}

type TierPolicy struct {
	Name               string       `json:"name"`
	GenerationsLimit   int          `json:"generationsLimit"`
	NamesPerGeneration int          `json:"namesPerGeneration"`
	TLDs               []string     `json:"tlds"`
	Features           TierFeatures `json:"features"`
}

// Tiers is the static tier policy table. Read-only.
var Tiers = map[Tier]TierPolicy{
	TierFree: {
		Name:               "Free",
		GenerationsLimit:   3,
		NamesPerGeneration: 5,
		TLDs:               []string{".com"},
		Features: TierFeatures{
			BrandScorePreview: true,
		},
	},
	TierPro: {
		Name:               "Pro",
		GenerationsLimit:   50,
		NamesPerGeneration: 10,
		TLDs:               []string{".com", ".io", ".app", ".dev"},
		Features: TierFeatures{
			SocialHandles:      true,
			TrademarkScreening: true,
			CompetitorAnalysis: true,
			BrandScorePreview:  true,
			BrandScoreFull:     true,
		},
	},
}

// PolicyFor resolves the policy for a tier. An unknown tier is a
// configuration error, not a user error.
func PolicyFor(tier Tier) (TierPolicy, error) {
	policy, ok := Tiers[tier]
	if !ok {
		return TierPolicy{}, fmt.Errorf("unknown tier %q", tier)
	}
	return policy, nil
}

// AllowsTLD reports whether the tier's TLD list contains tld.
func (p TierPolicy) AllowsTLD(tld string) bool {
	for _, t := range p.TLDs {
		if t == tld {
			return true
		}
	}
	return false
}
