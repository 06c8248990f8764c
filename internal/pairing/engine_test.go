package pairing

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/ryosuke-horie/group-generator/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testEngine(seed int64) *Engine {
	return NewWithRand(zap.NewNop().Sugar(), rand.New(rand.NewSource(seed)))
}

func pairKey(p entities.Pair) string {
	if p.First < p.Second {
		return p.First + "|" + p.Second
	}
	return p.Second + "|" + p.First
}

func TestSearchForcedPartition(t *testing.T) {
	// Only (A,D) and (B,C) satisfy both constraints, so every successful
	// search must return exactly that partition.
	population := []entities.Person{
		{Name: "A", Group: "G1", Team: "T1"},
		{Name: "B", Group: "G1", Team: "T2"},
		{Name: "C", Group: "G2", Team: "T1"},
		{Name: "D", Group: "G2", Team: "T2"},
	}

	for seed := int64(1); seed <= 20; seed++ {
		res, err := testEngine(seed).Search(population, 100)
		require.NoError(t, err)
		require.True(t, res.Found)
		require.Len(t, res.Pairs, 2)

		got := map[string]bool{}
		for _, p := range res.Pairs {
			got[pairKey(p)] = true
		}
		require.True(t, got["A|D"], "seed %d: expected pair (A,D), got %v", seed, res.Pairs)
		require.True(t, got["B|C"], "seed %d: expected pair (B,C), got %v", seed, res.Pairs)
	}
}

func TestSearchOddPopulation(t *testing.T) {
	population := []entities.Person{
		{Name: "A", Group: "G1", Team: "T1"},
		{Name: "B", Group: "G2", Team: "T2"},
		{Name: "C", Group: "G3", Team: "T3"},
	}

	res, err := testEngine(1).Search(population, 100)
	require.ErrorIs(t, err, entities.ErrOddPopulation)
	require.Zero(t, res.Attempts)
	require.False(t, res.Found)
}

func TestSearchEmptyPopulation(t *testing.T) {
	res, err := testEngine(1).Search(nil, 100)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Empty(t, res.Pairs)
	require.Zero(t, res.Attempts)
}

func TestSearchInfeasibleSameGroup(t *testing.T) {
	population := []entities.Person{
		{Name: "A", Group: "G1", Team: "T1"},
		{Name: "B", Group: "G1", Team: "T2"},
	}

	res, err := testEngine(1).Search(population, 50)
	require.NoError(t, err, "infeasibility is a result, not an error")
	require.False(t, res.Found)
	require.Empty(t, res.Pairs)
	require.Equal(t, 50, res.Attempts)
}

func TestSearchInfeasibleSameGroupAndTeam(t *testing.T) {
	population := []entities.Person{
		{Name: "A", Group: "G1", Team: "T1"},
		{Name: "B", Group: "G1", Team: "T1"},
	}

	res, err := testEngine(7).Search(population, 25)
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Equal(t, 25, res.Attempts)
}

func TestSearchUnassignedTeamsShareSentinel(t *testing.T) {
	// Different groups but both without a team assignment: the shared
	// unassigned value blocks the pair.
	population := []entities.Person{
		{Name: "A", Group: "G1", Team: entities.TeamUnassigned},
		{Name: "B", Group: "G2", Team: entities.TeamUnassigned},
	}

	res, err := testEngine(1).Search(population, 30)
	require.NoError(t, err)
	require.False(t, res.Found)

	// An unassigned person pairs fine with an assigned one.
	population[1].Team = "T1"
	res, err = testEngine(1).Search(population, 30)
	require.NoError(t, err)
	require.True(t, res.Found)
}

func TestSearchPartitionCompleteness(t *testing.T) {
	// 24 people over 4 groups x 3 teams: loose constraints, the search
	// should settle quickly and cover everyone exactly once.
	population := make([]entities.Person, 0, 24)
	for i := 0; i < 24; i++ {
		population = append(population, entities.Person{
			Name:  fmt.Sprintf("p%02d", i),
			Group: fmt.Sprintf("G%d", i%4),
			Team:  fmt.Sprintf("T%d", i%3),
		})
	}

	for seed := int64(1); seed <= 10; seed++ {
		res, err := testEngine(seed).Search(population, DefaultMaxAttempts)
		require.NoError(t, err)
		require.True(t, res.Found, "seed %d", seed)
		require.Len(t, res.Pairs, 12)

		byName := make(map[string]entities.Person, len(population))
		for _, p := range population {
			byName[p.Name] = p
		}

		seen := map[string]int{}
		for _, pair := range res.Pairs {
			seen[pair.First]++
			seen[pair.Second]++

			a, b := byName[pair.First], byName[pair.Second]
			require.NotEqual(t, a.Group, b.Group, "seed %d: pair %v shares a group", seed, pair)
			require.NotEqual(t, a.Team, b.Team, "seed %d: pair %v shares a team", seed, pair)
		}
		require.Len(t, seen, len(population), "seed %d: pairing must cover the whole population", seed)
		for name, count := range seen {
			require.Equal(t, 1, count, "seed %d: %s paired %d times", seed, name, count)
		}
	}
}

func TestSearchDoesNotMutatePopulation(t *testing.T) {
	population := []entities.Person{
		{Name: "A", Group: "G1", Team: "T1"},
		{Name: "B", Group: "G2", Team: "T2"},
	}
	snapshot := append([]entities.Person(nil), population...)

	_, err := testEngine(3).Search(population, 10)
	require.NoError(t, err)
	require.Equal(t, snapshot, population)
}

func TestCanPair(t *testing.T) {
	tests := []struct {
		name string
		a, b entities.Person
		ok   bool
	}{
		{
			name: "different group and team",
			a:    entities.Person{Name: "A", Group: "G1", Team: "T1"},
			b:    entities.Person{Name: "B", Group: "G2", Team: "T2"},
			ok:   true,
		},
		{
			name: "same group",
			a:    entities.Person{Name: "A", Group: "G1", Team: "T1"},
			b:    entities.Person{Name: "B", Group: "G1", Team: "T2"},
			ok:   false,
		},
		{
			name: "same team",
			a:    entities.Person{Name: "A", Group: "G1", Team: "T1"},
			b:    entities.Person{Name: "B", Group: "G2", Team: "T1"},
			ok:   false,
		},
		{
			name: "both unassigned",
			a:    entities.Person{Name: "A", Group: "G1"},
			b:    entities.Person{Name: "B", Group: "G2"},
			ok:   false,
		},
		{
			name: "one unassigned",
			a:    entities.Person{Name: "A", Group: "G1"},
			b:    entities.Person{Name: "B", Group: "G2", Team: "T1"},
			ok:   true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.ok, CanPair(tt.a, tt.b))
			require.Equal(t, tt.ok, CanPair(tt.b, tt.a))
		})
	}
}
