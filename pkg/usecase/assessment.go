package usecase

import (
	"context"
	"io"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/entrysight/entrysight/pkg/domain/model"
	"github.com/entrysight/entrysight/pkg/report"
	"github.com/entrysight/entrysight/pkg/scoring"
	"github.com/entrysight/entrysight/pkg/utils/logging"
)

// Assessment orchestrates response ingestion, scoring and report rendering
// over one shared, read-only catalog
type Assessment struct {
	catalog *model.Catalog
}

// New creates an Assessment use case for the given catalog. The catalog must
// be validated before being handed over and never mutated afterwards.
func New(c *model.Catalog) *Assessment {
	return &Assessment{catalog: c}
}

// Catalog returns the catalog the use case scores against
func (uc *Assessment) Catalog() *model.Catalog {
	return uc.catalog
}

// Assess validates the company info, decodes the raw responses against the
// catalog, and returns a fresh submission carrying the computed result
func (uc *Assessment) Assess(ctx context.Context, company model.CompanyInfo, raw map[string]any) (*model.Submission, error) {
	if err := company.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid company info")
	}

	responses, err := uc.catalog.DecodeResponses(raw)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid responses")
	}

	result := scoring.Evaluate(uc.catalog, responses)

	submission := &model.Submission{
		ID:          model.NewSubmissionID(),
		CompanyInfo: company,
		Responses:   responses,
		Result:      result,
		SubmittedAt: time.Now().UTC(),
	}

	logging.From(ctx).Info("assessment scored",
		"submission_id", submission.ID,
		"company", company.CompanyName,
		"overall_score", result.OverallScore,
		"overall_risk", result.OverallRiskTier,
		"completion", result.CompletionPercentage,
	)

	return submission, nil
}

// Export renders the submission in the given report format
func (uc *Assessment) Export(w io.Writer, format report.Format, submission *model.Submission) error {
	if submission == nil || submission.Result == nil {
		return goerr.New("submission has no result")
	}
	if err := format.Validate(); err != nil {
		return err
	}
	return report.Write(w, format, uc.catalog, submission)
}
