package report

import (
	"html/template"
	"io"
	"math"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/entrysight/entrysight/pkg/domain/model"
	"github.com/entrysight/entrysight/pkg/domain/types"
)

var tierColors = map[types.RiskTier]string{
	types.RiskTierLow:      "#16a34a",
	types.RiskTierMedium:   "#ca8a04",
	types.RiskTierHigh:     "#ea580c",
	types.RiskTierCritical: "#dc2626",
}

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"round": func(v float64) int { return int(math.Round(v)) },
	"tierColor": func(t types.RiskTier) string {
		if c, ok := tierColors[t]; ok {
			return c
		}
		return "#1a1a1a"
	},
	"tierLabel": func(t types.RiskTier) string { return t.Label() },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Risk Assessment Report - {{.Submission.CompanyInfo.CompanyName}}</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body { font-family: 'Georgia', serif; line-height: 1.6; color: #1a1a1a; background: white; padding: 40px; }
    .container { max-width: 800px; margin: 0 auto; }
    .header { text-align: center; border-bottom: 3px solid #2563eb; padding-bottom: 30px; margin-bottom: 40px; }
    .logo { font-size: 32px; font-weight: bold; color: #2563eb; margin-bottom: 10px; }
    .score-box { background: #2563eb; color: white; padding: 40px; border-radius: 10px; text-align: center; margin: 40px 0; }
    .company-name { font-size: 36px; font-weight: bold; margin: 20px 0; }
    .score-display { font-size: 72px; font-weight: bold; margin: 30px 0; }
    .section { margin: 40px 0; }
    .section-title { font-size: 24px; font-weight: bold; color: #2563eb; margin-bottom: 20px; padding-bottom: 10px; border-bottom: 2px solid #e5e7eb; }
    .info-grid { display: grid; grid-template-columns: 200px 1fr; gap: 15px; margin: 20px 0; }
    .info-label { font-weight: bold; color: #64748b; }
    .category-score { display: flex; justify-content: space-between; align-items: center; padding: 15px; border: 1px solid #e5e7eb; border-radius: 8px; margin-bottom: 10px; }
    .category-name { font-weight: 600; }
    .category-value { font-size: 20px; font-weight: bold; }
    .risk-badge { display: inline-block; padding: 4px 12px; border-radius: 20px; font-size: 12px; font-weight: 600; margin-left: 10px; color: white; }
    .insights li { margin: 8px 0 8px 20px; }
    .footer { text-align: center; color: #64748b; margin-top: 60px; border-top: 1px solid #e5e7eb; padding-top: 20px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <div class="logo">Cross-Border Risk Assessment</div>
      <div>Generated {{.GeneratedAt.Format "January 2, 2006"}} &mdash; Report {{.Submission.ID}}</div>
    </div>

    <div class="score-box">
      <div class="company-name">{{.Submission.CompanyInfo.CompanyName}}</div>
      <div class="score-display">{{round .Submission.Result.OverallScore}}</div>
      <div>Overall Score (0-100) &mdash; {{tierLabel .Submission.Result.OverallRiskTier}}</div>
      <div>Assessment Completion: {{round .Submission.Result.CompletionPercentage}}%</div>
    </div>

    <div class="section">
      <div class="section-title">Company Information</div>
      <div class="info-grid">
        <div class="info-label">Country of Origin</div><div>{{.Submission.CompanyInfo.CountryOfOrigin}}</div>
        <div class="info-label">Industry</div><div>{{.Submission.CompanyInfo.Industry}}</div>
        <div class="info-label">Company Size</div><div>{{.Submission.CompanyInfo.CompanySize}}</div>
        <div class="info-label">Submitted</div><div>{{.Submission.SubmittedAt.Format "January 2, 2006"}}</div>
      </div>
    </div>

    <div class="section">
      <div class="section-title">Category Scores</div>
      {{range .Submission.Result.CategoryScores}}
      <div class="category-score">
        <span class="category-name">{{.CategoryName}}</span>
        <span>
          <span class="category-value" style="color: {{tierColor .RiskTier}}">{{round .Score}}%</span>
          <span class="risk-badge" style="background: {{tierColor .RiskTier}}">{{tierLabel .RiskTier}}</span>
        </span>
      </div>
      {{end}}
    </div>

    {{if .Submission.Result.Strengths}}
    <div class="section">
      <div class="section-title">Strengths</div>
      <ul class="insights">{{range .Submission.Result.Strengths}}<li>{{.}}</li>{{end}}</ul>
    </div>
    {{end}}

    {{if .Submission.Result.Concerns}}
    <div class="section">
      <div class="section-title">Areas of Concern</div>
      <ul class="insights">{{range .Submission.Result.Concerns}}<li>{{.}}</li>{{end}}</ul>
    </div>
    {{end}}

    <div class="section">
      <div class="section-title">Recommendations</div>
      <ul class="insights">{{range .Submission.Result.Recommendations}}<li>{{.}}</li>{{end}}</ul>
    </div>

    <div class="footer">
      <p>This report was generated from a self-reported questionnaire and does not constitute legal advice.</p>
    </div>
  </div>
</body>
</html>
`))

type htmlReportData struct {
	Submission  *model.Submission
	GeneratedAt time.Time
}

// WriteHTML renders a standalone report document with the overall score,
// per-category scores with risk tiers, and the three insight lists
func WriteHTML(w io.Writer, submission *model.Submission) error {
	data := htmlReportData{
		Submission:  submission,
		GeneratedAt: time.Now(),
	}
	if err := htmlTemplate.Execute(w, data); err != nil {
		return goerr.Wrap(err, "failed to render HTML report")
	}
	return nil
}
