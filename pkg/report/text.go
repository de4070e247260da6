package report

import (
	"fmt"
	"io"
	"math"

	"github.com/fatih/color"

	"github.com/entrysight/entrysight/pkg/domain/model"
	"github.com/entrysight/entrysight/pkg/domain/types"
)

var tierPrinters = map[types.RiskTier]*color.Color{
	types.RiskTierLow:      color.New(color.FgGreen),
	types.RiskTierMedium:   color.New(color.FgYellow),
	types.RiskTierHigh:     color.New(color.FgHiRed),
	types.RiskTierCritical: color.New(color.FgRed, color.Bold),
}

func tierText(t types.RiskTier) string {
	if p, ok := tierPrinters[t]; ok {
		return p.Sprint(t.Label())
	}
	return t.Label()
}

// WriteText renders a terminal-friendly report with colorized risk tiers
func WriteText(w io.Writer, submission *model.Submission) error {
	result := submission.Result

	bold := color.New(color.Bold)

	if _, err := bold.Fprintf(w, "%s\n", submission.CompanyInfo.CompanyName); err != nil {
		return err
	}
	fmt.Fprintf(w, "Report ID: %s\n", submission.ID)
	fmt.Fprintf(w, "Overall:   %d%% [%s]\n", round(result.OverallScore), tierText(result.OverallRiskTier))
	fmt.Fprintf(w, "Completed: %d%%\n\n", round(result.CompletionPercentage))

	bold.Fprintln(w, "Categories")
	for _, cat := range result.CategoryScores {
		fmt.Fprintf(w, "  %-36s %3d%% [%s]\n", cat.CategoryName, round(cat.Score), tierText(cat.RiskTier))
	}

	if len(result.Strengths) > 0 {
		fmt.Fprintln(w)
		bold.Fprintln(w, "Strengths")
		for _, s := range result.Strengths {
			fmt.Fprintf(w, "  + %s\n", s)
		}
	}

	if len(result.Concerns) > 0 {
		fmt.Fprintln(w)
		bold.Fprintln(w, "Concerns")
		for _, c := range result.Concerns {
			fmt.Fprintf(w, "  ! %s\n", c)
		}
	}

	fmt.Fprintln(w)
	bold.Fprintln(w, "Recommendations")
	for _, r := range result.Recommendations {
		fmt.Fprintf(w, "  - %s\n", r)
	}

	return nil
}

func round(v float64) int {
	return int(math.Round(v))
}
