package pairing

import (
	"time"

	"github.com/ryosuke-horie/group-generator/internal/report"
	"github.com/ryosuke-horie/group-generator/internal/roster"
)

// FileParams describes a one-shot file-based search.
type FileParams struct {
	RosterPath  string
	TeamsPath   string
	Exclusions  []string
	OutputPath  string
	MaxAttempts int
}

// SearchAndReport loads both CSV sources, runs the search and, on success,
// writes the report file. The returned path is empty when no pairing was found
// within the budget; infeasibility is signaled by Result.Found, not by error.
func (e *Engine) SearchAndReport(params FileParams) (Result, string, error) {
	rows, err := roster.LoadPeople(params.RosterPath)
	if err != nil {
		return Result{}, "", err
	}
	teamOf, err := roster.LoadTeams(params.TeamsPath)
	if err != nil {
		return Result{}, "", err
	}
	population, err := roster.Build(rows, teamOf, params.Exclusions)
	if err != nil {
		return Result{}, "", err
	}

	res, err := e.Search(population, params.MaxAttempts)
	if err != nil {
		return Result{}, "", err
	}
	if !res.Found {
		return res, "", nil
	}

	path, err := report.Write(res.Pairs, params.OutputPath, time.Now())
	if err != nil {
		return res, "", err
	}
	return res, path, nil
}
