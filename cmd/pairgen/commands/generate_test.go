package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGenerateNoSolutionPrintsNotice(t *testing.T) {
	dir := t.TempDir()
	roster := writeFixture(t, dir, "people.csv", "name,group\nAlice,G1\nBob,G1\n")
	teams := writeFixture(t, dir, "teams.csv", "T1,T2\nAlice,Bob\n")

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{
		"generate",
		"--roster", roster,
		"--teams", teams,
		"--max-attempts", "10",
		"--seed", "1",
	})

	err := rootCmd.Execute()

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, out.String(), "No valid pairing found within 10 attempts.")
}
