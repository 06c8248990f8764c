// Package roster parses the tabular input sources and builds the pairing population.
package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ryosuke-horie/group-generator/internal/entities"
)

// Required roster columns. Extra columns are ignored.
const (
	ColumnName  = "name"
	ColumnGroup = "group"
)

// Row is one parsed roster record.
type Row struct {
	Name  string
	Group string
}

// LoadPeople reads the roster CSV (name+group columns, comma-delimited UTF-8).
func LoadPeople(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", entities.ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read roster header: %w", err)
	}

	nameIdx, groupIdx := -1, -1
	for i, col := range header {
		switch normalizeHeader(col) {
		case ColumnName:
			nameIdx = i
		case ColumnGroup:
			groupIdx = i
		}
	}
	if nameIdx < 0 {
		return nil, fmt.Errorf("%w: %s", entities.ErrMissingColumn, ColumnName)
	}
	if groupIdx < 0 {
		return nil, fmt.Errorf("%w: %s", entities.ErrMissingColumn, ColumnGroup)
	}

	rows := make([]Row, 0)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read roster row: %w", err)
		}
		if nameIdx >= len(record) || groupIdx >= len(record) {
			continue
		}
		name := strings.TrimSpace(record[nameIdx])
		if name == "" {
			continue
		}
		rows = append(rows, Row{Name: name, Group: strings.TrimSpace(record[groupIdx])})
	}

	return rows, nil
}

// LoadTeams reads the wide-format team CSV: one column per team, the header cell
// is the team name and the cells below it are member names. Ragged columns are
// padded with empty cells, which are skipped. The first column containing a name
// wins on duplicates.
func LoadTeams(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", entities.ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("open teams: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read teams header: %w", err)
	}
	teams := make([]string, len(header))
	for i, col := range header {
		teams[i] = normalizeHeader(col)
	}

	teamOf := make(map[string]string)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read teams row: %w", err)
		}
		for i, cell := range record {
			if i >= len(teams) || teams[i] == "" {
				continue
			}
			name := strings.TrimSpace(cell)
			if name == "" {
				continue
			}
			if _, ok := teamOf[name]; !ok {
				teamOf[name] = teams[i]
			}
		}
	}

	return teamOf, nil
}

// Build merges the roster rows with the team lookup, drops excluded names and
// validates that the remaining population size is even. Names absent from every
// team column keep entities.TeamUnassigned as their team value.
func Build(rows []Row, teamOf map[string]string, exclusions []string) ([]entities.Person, error) {
	excluded := make(map[string]struct{}, len(exclusions))
	for _, name := range exclusions {
		excluded[strings.TrimSpace(name)] = struct{}{}
	}

	seen := make(map[string]struct{}, len(rows))
	population := make([]entities.Person, 0, len(rows))
	for _, row := range rows {
		if _, ok := excluded[row.Name]; ok {
			continue
		}
		if _, ok := seen[row.Name]; ok {
			continue
		}
		seen[row.Name] = struct{}{}

		team := entities.TeamUnassigned
		if t, ok := teamOf[row.Name]; ok {
			team = t
		}
		population = append(population, entities.Person{Name: row.Name, Group: row.Group, Team: team})
	}

	if len(population)%2 != 0 {
		return nil, fmt.Errorf("%w: %d people after exclusions", entities.ErrOddPopulation, len(population))
	}

	return population, nil
}

// Exclude returns the population without the excluded names.
func Exclude(population []entities.Person, exclusions []string) []entities.Person {
	if len(exclusions) == 0 {
		return population
	}
	excluded := make(map[string]struct{}, len(exclusions))
	for _, name := range exclusions {
		excluded[strings.TrimSpace(name)] = struct{}{}
	}
	out := make([]entities.Person, 0, len(population))
	for _, person := range population {
		if _, ok := excluded[person.Name]; ok {
			continue
		}
		out = append(out, person)
	}
	return out
}

// normalizeHeader trims whitespace and a possible UTF-8 BOM from a header cell.
func normalizeHeader(col string) string {
	return strings.TrimSpace(strings.TrimPrefix(col, "\uFEFF"))
}
