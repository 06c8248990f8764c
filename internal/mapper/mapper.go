// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/ryosuke-horie/group-generator/internal/api"
	"github.com/ryosuke-horie/group-generator/internal/entities"
)

// FromAPIPeople converts uploaded people to domain persons.
func FromAPIPeople(people []api.Person) []entities.Person {
	out := make([]entities.Person, 0, len(people))
	for _, p := range people {
		out = append(out, entities.Person{Name: p.Name, Group: p.Group, Team: p.Team})
	}
	return out
}

// ToAPIPeople converts domain persons to their transport shape.
func ToAPIPeople(people []entities.Person) []api.Person {
	out := make([]api.Person, 0, len(people))
	for _, p := range people {
		out = append(out, api.Person{Name: p.Name, Group: p.Group, Team: p.Team})
	}
	return out
}

// ToAPIRun converts a run with its pairs.
func ToAPIRun(run entities.Run) api.Run {
	pairs := make([]api.Pair, 0, len(run.Pairs))
	for i, p := range run.Pairs {
		pairs = append(pairs, api.Pair{Index: i + 1, First: p.First, Second: p.Second})
	}
	return api.Run{
		ID:             run.ID,
		Status:         string(run.Status),
		Attempts:       run.Attempts,
		PopulationSize: run.PopulationSize,
		Pairs:          pairs,
		CreatedAt:      run.CreatedAt,
	}
}

// ToAPIRunSummaries converts run listing entries.
func ToAPIRunSummaries(runs []entities.RunSummary) []api.RunSummary {
	out := make([]api.RunSummary, 0, len(runs))
	for _, r := range runs {
		out = append(out, api.RunSummary{
			ID:             r.ID,
			Status:         string(r.Status),
			Attempts:       r.Attempts,
			PopulationSize: r.PopulationSize,
			PairCount:      r.PairCount,
			CreatedAt:      r.CreatedAt,
		})
	}
	return out
}
