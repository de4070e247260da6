package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/entrysight/entrysight/pkg/domain/model"
	"github.com/entrysight/entrysight/pkg/report"
	"github.com/entrysight/entrysight/pkg/usecase"
	"github.com/entrysight/entrysight/pkg/utils/errutil"
	"github.com/entrysight/entrysight/pkg/utils/logging"
	"github.com/entrysight/entrysight/pkg/utils/safe"
)

// maxRequestBody caps assessment request bodies at 1MiB; a full response map
// is a few kilobytes
const maxRequestBody = 1 << 20

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// assessRequest is the wire shape of an assessment submission
type assessRequest struct {
	CompanyInfo model.CompanyInfo `json:"companyInfo"`
	Responses   map[string]any    `json:"responses"`
}

func assessHandler(uc *usecase.Assessment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submission, err := handleAssess(uc, w, r)
		if err != nil {
			return
		}
		writeJSON(w, http.StatusOK, submission)
	}
}

func exportHandler(uc *usecase.Assessment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format := report.Format(r.URL.Query().Get("format"))
		if format == "" {
			format = report.FormatJSON
		}
		if err := format.Validate(); err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		submission, err := handleAssess(uc, w, r)
		if err != nil {
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="assessment-%s.%s"`, submission.ID, format))

		if err := uc.Export(w, format, submission); err != nil {
			// Headers are already sent, so just log
			_ = errutil.Handle(r.Context(), err, "failed to render export")
		}
	}
}

// handleAssess decodes and scores the request body. On failure the HTTP
// error has already been written and a non-nil error is returned.
func handleAssess(uc *usecase.Assessment, w http.ResponseWriter, r *http.Request) (*model.Submission, error) {
	var req assessRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBody)
	defer safe.Close(r.Context(), body)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		wrapped := goerr.Wrap(err, "invalid request body")
		errutil.HandleHTTP(r.Context(), w, wrapped, http.StatusBadRequest)
		return nil, wrapped
	}

	submission, err := uc.Assess(r.Context(), req.CompanyInfo, req.Responses)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return nil, err
	}

	return submission, nil
}

// catalogQuestion is the wire shape of one question definition. Scoring
// semantics (polarity, option order) stay server-side.
type catalogQuestion struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
	Weight   float64  `json:"weight"`
	Required bool     `json:"required"`
}

type catalogSubcategory struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Questions   []catalogQuestion `json:"questions"`
}

type catalogCategory struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	Subcategories []catalogSubcategory `json:"subcategories"`
}

func catalogHandler(uc *usecase.Assessment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := uc.Catalog()

		categories := make([]catalogCategory, 0, len(c.Categories))
		for i := range c.Categories {
			cat := &c.Categories[i]

			subcategories := make([]catalogSubcategory, 0, len(cat.Subcategories))
			for j := range cat.Subcategories {
				sub := &cat.Subcategories[j]

				questions := make([]catalogQuestion, 0, len(sub.Questions))
				for k := range sub.Questions {
					q := &sub.Questions[k]
					questions = append(questions, catalogQuestion{
						ID:       q.ID.String(),
						Text:     q.Text,
						Type:     q.Type.String(),
						Options:  q.Options,
						Weight:   q.Weight,
						Required: q.Required,
					})
				}

				subcategories = append(subcategories, catalogSubcategory{
					ID:          sub.ID.String(),
					Name:        sub.Name,
					Description: sub.Description,
					Questions:   questions,
				})
			}

			categories = append(categories, catalogCategory{
				ID:            cat.ID.String(),
				Name:          cat.Name,
				Description:   cat.Description,
				Subcategories: subcategories,
			})
		}

		writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Default().Error("failed to encode response", "error", err)
	}
}
