// namegen runs the generation and validation pipeline from the command line,
// using the same adapters as the API. No auth or quota applies here; it is
// an operator tool.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/babumoltbot/saasname/app"
	"github.com/babumoltbot/saasname/app/config"
	"github.com/babumoltbot/saasname/app/models"
)

type nameReport struct {
	Name        models.GeneratedName    `json:"name"`
	BrandScore  models.BrandScore       `json:"brandScore"`
	Domains     []models.DomainResult   `json:"domains,omitempty"`
	Socials     []models.SocialResult   `json:"socials,omitempty"`
	Trademark   *models.TrademarkResult `json:"trademark,omitempty"`
	Competitors []models.Competitor     `json:"competitors,omitempty"`
}

func main() {
	count := flag.Int("count", 5, "number of names to generate")
	tldList := flag.String("tlds", ".com,.io,.app,.dev", "comma-separated TLDs to check")
	industry := flag.String("industry", "technology", "industry for trademark/competitor analysis")
	jsonOut := flag.Bool("json", false, "output raw JSON instead of formatted text")
	noValidate := flag.Bool("no-validate", false, "skip domain/social/trademark/competitor checks")
	flag.Parse()

	idea := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if idea == "" {
		fmt.Fprintln(os.Stderr, `Usage: namegen [flags] "Your SaaS idea here"`)
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	svc := app.NewServices(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	names, err := svc.Names.Generate(ctx, idea, *count)
	if err != nil || len(names) == 0 {
		fmt.Fprintln(os.Stderr, "name generation failed, please try again")
		os.Exit(1)
	}

	tlds := strings.Split(*tldList, ",")

	reports := make([]nameReport, len(names))
	var wg sync.WaitGroup
	for i, n := range names {
		wg.Add(1)
		go func(i int, n models.GeneratedName) {
			defer wg.Done()
			reports[i] = buildReport(ctx, svc, n, idea, *industry, tlds, *noValidate)
		}(i, n)
	}
	wg.Wait()

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(reports)
		return
	}

	for i, r := range reports {
		printReport(i, r)
	}
	fmt.Println()
}

// buildReport fans out the score and any requested validation checks for
// one candidate, the same batch shape the validate endpoint uses.
func buildReport(ctx context.Context, svc *app.Services, n models.GeneratedName, idea, industry string, tlds []string, skipValidation bool) nameReport {
	report := nameReport{Name: n}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		report.BrandScore = svc.Scores.Score(ctx, n.Name, idea)
	}()

	if !skipValidation {
		wg.Add(1)
		go func() {
			defer wg.Done()
			report.Domains = svc.Domains.Check(ctx, n.Name, tlds)
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			report.Socials = svc.Socials.Check(ctx, n.Name)
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm := svc.Trademarks.Screen(ctx, n.Name, industry)
			report.Trademark = &tm
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			report.Competitors = svc.Competitors.Analyze(ctx, n.Name, industry)
		}()
	}
	wg.Wait()

	return report
}

// --- formatted output ---

func green(s string) string  { return "\x1b[32m" + s + "\x1b[0m" }
func yellow(s string) string { return "\x1b[33m" + s + "\x1b[0m" }
func red(s string) string    { return "\x1b[31m" + s + "\x1b[0m" }
func dim(s string) string    { return "\x1b[2m" + s + "\x1b[0m" }
func bold(s string) string   { return "\x1b[1m" + s + "\x1b[0m" }

func scoreColor(score int) func(string) string {
	if score >= 80 {
		return green
	}
	if score >= 60 {
		return yellow
	}
	return red
}

func bar(val int) string {
	const width = 20
	filled := val * width / 100
	if filled > width {
		filled = width
	}
	return green(strings.Repeat("█", filled)) + dim(strings.Repeat("░", width-filled))
}

func printReport(index int, r nameReport) {
	sc := scoreColor(r.BrandScore.Overall)
	fmt.Println()
	fmt.Printf("%s  %s  %s\n", dim(fmt.Sprintf("%02d", index+1)), bold(r.Name.Name), sc(fmt.Sprintf("%d/100", r.BrandScore.Overall)))
	fmt.Printf("    %s\n", dim(r.Name.Tagline))
	fmt.Printf("    %s\n", dim(r.Name.Reasoning))

	fmt.Println()
	fmt.Printf("    %s\n", dim("Brand Score Breakdown:"))
	breakdown := []struct {
		label string
		val   int
	}{
		{"memorability", r.BrandScore.Breakdown.Memorability},
		{"pronounceability", r.BrandScore.Breakdown.Pronounceability},
		{"uniqueness", r.BrandScore.Breakdown.Uniqueness},
		{"relevance", r.BrandScore.Breakdown.Relevance},
		{"length", r.BrandScore.Breakdown.Length},
	}
	for _, d := range breakdown {
		fmt.Printf("    %s %s %s\n", dim(fmt.Sprintf("%-16s", d.label)), bar(d.val), dim(fmt.Sprintf("%d", d.val)))
	}
	fmt.Printf("    %s\n", dim(r.BrandScore.Summary))

	if r.Domains != nil {
		fmt.Println()
		fmt.Printf("    %s\n", dim("Domains:"))
		for _, d := range r.Domains {
			status := yellow("✗ taken")
			if d.Available {
				status = green("✓ available")
			}
			fmt.Printf("    %s %s\n", dim(fmt.Sprintf("%-28s", d.Domain)), status)
		}
	}

	if r.Socials != nil {
		fmt.Println()
		fmt.Printf("    %s\n", dim("Social Handles:"))
		for _, s := range r.Socials {
			platform := s.Platform
			if platform == "twitter" {
				platform = "X"
			}
			status := yellow("✗ taken")
			if s.Available {
				status = green("✓ available")
			}
			fmt.Printf("    %s %s %s\n", dim(fmt.Sprintf("%-12s", platform)), dim(fmt.Sprintf("%-20s", s.Handle)), status)
		}
	}

	if r.Trademark != nil {
		fmt.Println()
		risk := red("HIGH RISK")
		switch r.Trademark.RiskLevel {
		case models.RiskClear:
			risk = green("CLEAR")
		case models.RiskCaution:
			risk = yellow("CAUTION")
		}
		fmt.Printf("    %s %s\n", dim("Trademark:"), risk)
		fmt.Printf("    %s\n", dim(r.Trademark.Details))
		if len(r.Trademark.SimilarMarks) > 0 {
			fmt.Printf("    %s %s\n", dim("Similar marks:"), dim(strings.Join(r.Trademark.SimilarMarks, ", ")))
		}
	}

	if len(r.Competitors) > 0 {
		fmt.Println()
		fmt.Printf("    %s\n", dim("Competitors:"))
		for _, comp := range r.Competitors {
			fmt.Printf("    %s %s %s\n", dim(fmt.Sprintf("%-20s", comp.Name)), dim(fmt.Sprintf("%3d/100", comp.Similarity)), dim(comp.URL))
		}
	}
}
