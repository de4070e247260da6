package report

import (
	"encoding/json"
	"io"

	"github.com/m-mizutani/goerr/v2"

	"github.com/entrysight/entrysight/pkg/domain/model"
)

// WriteJSON serializes the full submission verbatim as indented JSON
func WriteJSON(w io.Writer, submission *model.Submission) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(submission); err != nil {
		return goerr.Wrap(err, "failed to encode submission as JSON")
	}
	return nil
}
