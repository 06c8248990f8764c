package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ryosuke-horie/group-generator/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertRunQuery = `
INSERT INTO runs(status, attempts, population_size)
VALUES ($1, $2, $3)
RETURNING id, created_at`
	insertRunPairQuery  = `INSERT INTO run_pairs(run_id, pair_index, first_name, second_name) VALUES ($1, $2, $3, $4)`
	selectRunQuery      = `SELECT id, status, attempts, population_size, created_at FROM runs WHERE id = $1`
	selectRunPairsQuery = `SELECT first_name, second_name FROM run_pairs WHERE run_id = $1 ORDER BY pair_index`
	listRunsQuery       = `
SELECT r.id, r.status, r.attempts, r.population_size, r.created_at, COUNT(rp.run_id) AS pair_count
FROM runs r
LEFT JOIN run_pairs rp ON rp.run_id = r.id
GROUP BY r.id
ORDER BY r.created_at DESC, r.id DESC
LIMIT $1`
)

// CreateRun stores a run and its pairs in one transaction and returns the run
// with its assigned id and timestamp.
func (p *Postgres) CreateRun(ctx context.Context, run entities.Run) (*entities.Run, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var createdAt time.Time
	if err := tx.QueryRow(ctx, insertRunQuery, run.Status, run.Attempts, run.PopulationSize).
		Scan(&run.ID, &createdAt); err != nil {
		p.log.Errorw("failed to insert run", "error", err)
		return nil, fmt.Errorf("insert run: %w", err)
	}

	for i, pair := range run.Pairs {
		if _, err := tx.Exec(ctx, insertRunPairQuery, run.ID, i, pair.First, pair.Second); err != nil {
			p.log.Errorw("failed to insert run pair", "error", err, "run_id", run.ID)
			return nil, fmt.Errorf("insert run pair: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	run.CreatedAt = &createdAt
	p.log.Infow("run stored", "run_id", run.ID, "status", run.Status, "pairs", len(run.Pairs))
	return &run, nil
}

// GetRun fetches a run with its pairs by id.
func (p *Postgres) GetRun(ctx context.Context, id int64) (*entities.Run, error) {
	var run entities.Run
	var createdAt time.Time
	if err := p.db.QueryRow(ctx, selectRunQuery, id).
		Scan(&run.ID, &run.Status, &run.Attempts, &run.PopulationSize, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrRunNotFound
		}
		return nil, fmt.Errorf("get run: %w", err)
	}
	run.CreatedAt = &createdAt

	rows, err := p.db.Query(ctx, selectRunPairsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("get run pairs: %w", err)
	}
	defer rows.Close()

	pairs := make(entities.Pairing, 0)
	for rows.Next() {
		var pair entities.Pair
		if err := rows.Scan(&pair.First, &pair.Second); err != nil {
			p.log.Errorw("failed to scan run pair", "error", err, "run_id", id)
			return nil, fmt.Errorf("scan run pair: %w", err)
		}
		pairs = append(pairs, pair)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("error iterating run pairs", "error", err, "run_id", id)
		return nil, fmt.Errorf("iterate run pairs: %w", err)
	}

	run.Pairs = pairs
	return &run, nil
}

// ListRuns returns newest-first run summaries.
func (p *Postgres) ListRuns(ctx context.Context, limit int) ([]entities.RunSummary, error) {
	rows, err := p.db.Query(ctx, listRunsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	runs := make([]entities.RunSummary, 0)
	for rows.Next() {
		var s entities.RunSummary
		var createdAt time.Time
		if err := rows.Scan(&s.ID, &s.Status, &s.Attempts, &s.PopulationSize, &createdAt, &s.PairCount); err != nil {
			p.log.Errorw("failed to scan run summary", "error", err)
			return nil, fmt.Errorf("scan run summary: %w", err)
		}
		s.CreatedAt = &createdAt
		runs = append(runs, s)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("error iterating runs", "error", err)
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}
