package report

import (
	"io"

	"github.com/m-mizutani/goerr/v2"

	"github.com/entrysight/entrysight/pkg/domain/model"
)

// Format selects a report output encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatHTML Format = "html"
	FormatText Format = "text"
)

// Validate checks if the Format is supported
func (f Format) Validate() error {
	switch f {
	case FormatJSON, FormatCSV, FormatHTML, FormatText:
		return nil
	default:
		return goerr.New("unsupported report format", goerr.V("format", f))
	}
}

// String returns the string representation of Format
func (f Format) String() string {
	return string(f)
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatText:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

// Write renders the submission in the given format. The catalog is needed
// for the CSV export, which walks every catalog question.
func Write(w io.Writer, f Format, c *model.Catalog, submission *model.Submission) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, submission)
	case FormatCSV:
		return WriteCSV(w, c, submission)
	case FormatHTML:
		return WriteHTML(w, submission)
	case FormatText:
		return WriteText(w, submission)
	default:
		return goerr.New("unsupported report format", goerr.V("format", f))
	}
}
