package report

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"github.com/m-mizutani/goerr/v2"

	"github.com/entrysight/entrysight/pkg/domain/model"
)

// WriteCSV exports one row per catalog question, pairing the question text
// and raw answer with the owning category's rounded score. Unanswered
// questions are included with an explicit marker so the export always covers
// the full catalog.
func WriteCSV(w io.Writer, c *model.Catalog, submission *model.Submission) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Category", "Subcategory", "Question", "Answer", "Score"}); err != nil {
		return goerr.Wrap(err, "failed to write CSV header")
	}

	categoryScores := make(map[string]float64, len(submission.Result.CategoryScores))
	for _, cs := range submission.Result.CategoryScores {
		categoryScores[cs.CategoryID.String()] = cs.Score
	}

	for i := range c.Categories {
		cat := &c.Categories[i]
		score := strconv.Itoa(int(math.Round(categoryScores[cat.ID.String()])))

		for j := range cat.Subcategories {
			sub := &cat.Subcategories[j]
			for k := range sub.Questions {
				q := &sub.Questions[k]

				answerStr := "Not answered"
				if answer, ok := submission.Responses[q.ID]; ok {
					answerStr = answer.Render()
				}

				row := []string{cat.Name, sub.Name, q.Text, answerStr, score}
				if err := cw.Write(row); err != nil {
					return goerr.Wrap(err, "failed to write CSV row", goerr.V("question_id", q.ID))
				}
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush CSV")
	}
	return nil
}
