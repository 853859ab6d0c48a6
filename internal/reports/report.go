// Package reports implements the report composition domain for Dragoman.
// It resolves incident codes against the term dictionary, drives the
// text-generation stages, and assembles customer-facing English reports.
package reports

import "time"

// Issue pairs a component code with a fault code, both abbreviations
// from the term dictionary.
type Issue struct {
	Component string `json:"component"`
	Fault     string `json:"fault"`
}

// IncidentDescription is the structured input for report composition.
// Issues and Actions keep their request order through generation and
// assembly. An empty Actions list produces an acknowledgement report
// instead of an intervention report.
type IncidentDescription struct {
	Issues  []Issue  `json:"issues"`
	Actions []string `json:"actions,omitempty"`
}

// Report is a composed customer-facing report.
type Report struct {
	Text        string    `json:"text"`
	Issues      int       `json:"issues"`
	Actions     int       `json:"actions"`
	GeneratedAt time.Time `json:"generated_at"`
}
