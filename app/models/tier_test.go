package models

import "testing"

func TestPolicyFor(t *testing.T) {
	free, err := PolicyFor(TierFree)
	if err != nil {
		t.Fatalf("PolicyFor(free): %v", err)
	}
	if free.GenerationsLimit != 3 || free.NamesPerGeneration != 5 {
		t.Fatalf("free policy = %+v", free)
	}
	if free.Features.SocialHandles || free.Features.TrademarkScreening || free.Features.CompetitorAnalysis {
		t.Fatalf("free tier should not unlock gated checks: %+v", free.Features)
	}
	if !free.Features.BrandScorePreview || free.Features.BrandScoreFull {
		t.Fatalf("free tier gets the score preview only: %+v", free.Features)
	}

	pro, err := PolicyFor(TierPro)
	if err != nil {
		t.Fatalf("PolicyFor(pro): %v", err)
	}
	if pro.GenerationsLimit != 50 || pro.NamesPerGeneration != 10 {
		t.Fatalf("pro policy = %+v", pro)
	}
	if !pro.Features.SocialHandles || !pro.Features.TrademarkScreening || !pro.Features.CompetitorAnalysis || !pro.Features.BrandScoreFull {
		t.Fatalf("pro tier should unlock everything: %+v", pro.Features)
	}

	if _, err := PolicyFor(Tier("enterprise")); err == nil {
		t.Fatalf("unknown tier should be an error")
	}
}

func TestAllowsTLD(t *testing.T) {
	free := Tiers[TierFree]
	if !free.AllowsTLD(".com") {
		t.Fatalf("free tier should allow .com")
	}
	for _, tld := range []string{".io", ".app", ".dev", ".net"} {
		if free.AllowsTLD(tld) {
			t.Fatalf("free tier should not allow %s", tld)
		}
	}

	pro := Tiers[TierPro]
	for _, tld := range []string{".com", ".io", ".app", ".dev"} {
		if !pro.AllowsTLD(tld) {
			t.Fatalf("pro tier should allow %s", tld)
		}
	}
	if pro.AllowsTLD(".net") {
		t.Fatalf("pro tier should not allow .net")
	}
}
