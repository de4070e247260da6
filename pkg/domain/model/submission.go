package model

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// SubmissionID is a UUID-based identifier for a Submission
type SubmissionID string

// NewSubmissionID generates a new UUID v4 SubmissionID
func NewSubmissionID() SubmissionID {
	return SubmissionID(uuid.New().String())
}

// String returns the string representation of SubmissionID
func (s SubmissionID) String() string {
	return string(s)
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// CompanyInfo describes the company under assessment
type CompanyInfo struct {
	CompanyName     string `json:"companyName"`
	CountryOfOrigin string `json:"countryOfOrigin"`
	Industry        string `json:"industry"`
	CompanySize     string `json:"companySize"`
	ContactName     string `json:"contactName"`
	ContactEmail    string `json:"contactEmail" masq:"secret"`
}

// Validate checks if the CompanyInfo is complete
func (c *CompanyInfo) Validate() error {
	if len(c.CompanyName) < 2 {
		return goerr.New("company name must be at least 2 characters")
	}
	if len(c.CountryOfOrigin) < 2 {
		return goerr.New("country of origin is required")
	}
	if len(c.Industry) < 2 {
		return goerr.New("industry is required")
	}
	if c.CompanySize == "" {
		return goerr.New("company size is required")
	}
	if len(c.ContactName) < 2 {
		return goerr.New("contact name is required")
	}
	if !emailPattern.MatchString(c.ContactEmail) {
		return goerr.New("valid contact email is required")
	}
	return nil
}

// Submission pairs one set of responses with its computed result. It is
// assembled per scoring call and returned to the caller; nothing is stored.
type Submission struct {
	ID          SubmissionID      `json:"id"`
	CompanyInfo CompanyInfo       `json:"companyInfo"`
	Responses   Responses         `json:"responses"`
	Result      *AssessmentResult `json:"result"`
	SubmittedAt time.Time         `json:"submittedAt"`
}
