// Package api defines the HTTP request/response types.
package api

import "time"

// ErrorCode enumerates machine-readable error codes.
type ErrorCode string

const (
	// BADREQUEST marks malformed or invalid input.
	BADREQUEST ErrorCode = "BAD_REQUEST"
	// NOTFOUND marks a missing resource.
	NOTFOUND ErrorCode = "NOT_FOUND"
	// ODDPOPULATION marks an odd population size after exclusions.
	ODDPOPULATION ErrorCode = "ODD_POPULATION"
	// EMPTYROSTER marks a pairing request before any roster upload.
	EMPTYROSTER ErrorCode = "EMPTY_ROSTER"
	// INTERNAL marks an unexpected server error.
	INTERNAL ErrorCode = "INTERNAL"
)

// ErrorResponse is the error envelope returned by every failing endpoint.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the code and human-readable message.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Person is the transport shape of a roster member.
type Person struct {
	Name  string `json:"name"`
	Group string `json:"group"`
	Team  string `json:"team,omitempty"`
}

// UploadRosterRequest replaces the stored roster.
type UploadRosterRequest struct {
	People []Person `json:"people"`
}

// UploadRosterResponse confirms how many people were stored.
type UploadRosterResponse struct {
	Count int `json:"count"`
}

// RosterResponse lists the stored roster.
type RosterResponse struct {
	People []Person `json:"people"`
}

// GenerateRequest triggers a pairing run.
type GenerateRequest struct {
	Exclusions  []string `json:"exclusions,omitempty"`
	MaxAttempts int      `json:"max_attempts,omitempty"`
}

// Pair is one generated pair.
type Pair struct {
	Index  int    `json:"index"`
	First  string `json:"first"`
	Second string `json:"second"`
}

// Run is the transport shape of a pairing run.
type Run struct {
	ID             int64      `json:"id"`
	Status         string     `json:"status"`
	Attempts       int        `json:"attempts"`
	PopulationSize int        `json:"population_size"`
	Pairs          []Pair     `json:"pairs"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

// RunSummary is a compact run listing entry.
type RunSummary struct {
	ID             int64      `json:"id"`
	Status         string     `json:"status"`
	Attempts       int        `json:"attempts"`
	PopulationSize int        `json:"population_size"`
	PairCount      int        `json:"pair_count"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

// RunsResponse lists run summaries.
type RunsResponse struct {
	Runs []RunSummary `json:"runs"`
}
