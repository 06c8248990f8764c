// Package entities contains core business entities.
package entities

import "time"

// RunStatus enumerates pairing run outcomes.
type RunStatus string

const (
	// StatusMatched marks a run that produced a complete pairing.
	StatusMatched RunStatus = "MATCHED"
	// StatusNoSolution marks a run that exhausted its attempt budget.
	StatusNoSolution RunStatus = "NO_SOLUTION"
)

// Run is a persisted pairing search outcome.
type Run struct {
	ID             int64
	Status         RunStatus
	Attempts       int
	PopulationSize int
	Pairs          Pairing
	CreatedAt      *time.Time
}

// GenerateParams controls one pairing run.
type GenerateParams struct {
	Exclusions  []string
	MaxAttempts int
}

// RunSummary is a compact projection for run listings.
type RunSummary struct {
	ID             int64
	Status         RunStatus
	Attempts       int
	PopulationSize int
	PairCount      int
	CreatedAt      *time.Time
}
