package postgres

import (
	"context"
	"fmt"

	"github.com/ryosuke-horie/group-generator/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	deleteRosterQuery = `DELETE FROM people`
	insertPersonQuery = `INSERT INTO people(name, group_name, team_name) VALUES ($1, $2, $3)`
	selectRosterQuery = `SELECT name, group_name, team_name FROM people ORDER BY name`
)

// ReplaceRoster swaps the stored roster for the given people in one transaction.
func (p *Postgres) ReplaceRoster(ctx context.Context, people []entities.Person) (int, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, deleteRosterQuery); err != nil {
		p.log.Errorw("failed to clear roster", "error", err)
		return 0, fmt.Errorf("clear roster: %w", err)
	}

	for _, person := range people {
		if _, err := tx.Exec(ctx, insertPersonQuery, person.Name, person.Group, person.Team); err != nil {
			p.log.Errorw("failed to insert person", "error", err, "name", person.Name)
			return 0, fmt.Errorf("insert person: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	p.log.Infow("roster replaced", "people", len(people))
	return len(people), nil
}

// GetRoster returns the stored roster ordered by name.
func (p *Postgres) GetRoster(ctx context.Context) ([]entities.Person, error) {
	rows, err := p.db.Query(ctx, selectRosterQuery)
	if err != nil {
		return nil, fmt.Errorf("get roster: %w", err)
	}
	defer rows.Close()

	people := make([]entities.Person, 0)
	for rows.Next() {
		var person entities.Person
		if err := rows.Scan(&person.Name, &person.Group, &person.Team); err != nil {
			p.log.Errorw("failed to scan person", "error", err)
			return nil, fmt.Errorf("scan person: %w", err)
		}
		people = append(people, person)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("error iterating roster", "error", err)
		return nil, fmt.Errorf("iterate roster: %w", err)
	}

	return people, nil
}
