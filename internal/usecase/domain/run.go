// Package domain contains application Usecases orchestrating pairing logic.
package domain

import (
	"context"
	"fmt"

	"github.com/ryosuke-horie/group-generator/internal/entities"
	"github.com/ryosuke-horie/group-generator/internal/roster"
)

// GeneratePairing runs one search over the stored roster minus exclusions and
// persists the outcome, matched or not. An odd population aborts before any
// attempt and nothing is stored.
func (u *Usecase) GeneratePairing(ctx context.Context, params entities.GenerateParams) (*entities.Run, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	people, err := u.repo.GetRoster(ctx)
	if err != nil {
		return nil, err
	}
	if len(people) == 0 {
		return nil, entities.ErrEmptyRoster
	}

	population := roster.Exclude(people, params.Exclusions)

	maxAttempts := params.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = u.maxAttempts
	}

	res, err := u.engine.Search(population, maxAttempts)
	if err != nil {
		return nil, err
	}

	run := entities.Run{
		Status:         entities.StatusNoSolution,
		Attempts:       res.Attempts,
		PopulationSize: len(population),
	}
	if res.Found {
		run.Status = entities.StatusMatched
		run.Pairs = res.Pairs
	}

	stored, err := u.repo.CreateRun(ctx, run)
	if err != nil {
		return nil, err
	}

	u.log.Infow("pairing run", "run_id", stored.ID, "status", stored.Status, "attempts", stored.Attempts)
	return stored, nil
}

// Run returns a stored run with its pairs.
func (u *Usecase) Run(ctx context.Context, id int64) (*entities.Run, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: run id must be positive", entities.ErrInvalidArgument)
	}
	return u.repo.GetRun(ctx, id)
}

// Runs returns newest-first run summaries.
func (u *Usecase) Runs(ctx context.Context, limit int) ([]entities.RunSummary, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if limit <= 0 {
		limit = 20
	}
	return u.repo.ListRuns(ctx, limit)
}
