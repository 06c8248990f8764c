package pairing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ryosuke-horie/group-generator/internal/entities"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSearchAndReportWritesFile(t *testing.T) {
	dir := t.TempDir()
	rosterPath := writeFile(t, dir, "people.csv",
		"name,group\nA,G1\nB,G1\nC,G2\nD,G2\n")
	teamsPath := writeFile(t, dir, "teams.csv",
		"T1,T2\nA,B\nC,D\n")
	outPath := filepath.Join(dir, "result.txt")

	res, path, err := testEngine(1).SearchAndReport(FileParams{
		RosterPath: rosterPath,
		TeamsPath:  teamsPath,
		OutputPath: outPath,
	})
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, outPath, path)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Contains(t, string(content), "Pairs generated: 2")
	require.Contains(t, string(content), "Pair 1:")
}

func TestSearchAndReportMissingSource(t *testing.T) {
	dir := t.TempDir()
	teamsPath := writeFile(t, dir, "teams.csv", "T1\nA\n")

	_, _, err := testEngine(1).SearchAndReport(FileParams{
		RosterPath: filepath.Join(dir, "nope.csv"),
		TeamsPath:  teamsPath,
	})
	require.ErrorIs(t, err, entities.ErrSourceNotFound)
}

func TestSearchAndReportOddPopulation(t *testing.T) {
	dir := t.TempDir()
	rosterPath := writeFile(t, dir, "people.csv",
		"name,group\nA,G1\nB,G2\nC,G3\nD,G4\n")
	teamsPath := writeFile(t, dir, "teams.csv",
		"T1,T2\nA,B\nC,D\n")

	_, _, err := testEngine(1).SearchAndReport(FileParams{
		RosterPath: rosterPath,
		TeamsPath:  teamsPath,
		Exclusions: []string{"D"},
	})
	require.ErrorIs(t, err, entities.ErrOddPopulation)
}

func TestSearchAndReportNoSolutionWritesNothing(t *testing.T) {
	dir := t.TempDir()
	rosterPath := writeFile(t, dir, "people.csv",
		"name,group\nA,G1\nB,G1\n")
	teamsPath := writeFile(t, dir, "teams.csv",
		"T1,T2\nA,B\n")
	outPath := filepath.Join(dir, "result.txt")

	res, path, err := testEngine(1).SearchAndReport(FileParams{
		RosterPath:  rosterPath,
		TeamsPath:   teamsPath,
		OutputPath:  outPath,
		MaxAttempts: 10,
	})
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Empty(t, path)
	require.NoFileExists(t, outPath)
}

func TestSearchAndReportMultibyteNames(t *testing.T) {
	dir := t.TempDir()
	rosterPath := writeFile(t, dir, "people.csv",
		"name,group\n三留秋穂,営業\n志田彩,開発\n")
	teamsPath := writeFile(t, dir, "teams.csv",
		"チームA,チームB\n三留秋穂,志田彩\n")

	res, path, err := testEngine(1).SearchAndReport(FileParams{
		RosterPath: rosterPath,
		TeamsPath:  teamsPath,
		OutputPath: filepath.Join(dir, "result.txt"),
	})
	require.NoError(t, err)
	require.True(t, res.Found)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(content), "三留秋穂")
	require.Contains(t, string(content), "志田彩")
}
