// Package report renders pairing results and persists them as text files.
package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ryosuke-horie/group-generator/internal/entities"
)

const separator = "=================================================="

// Render formats a pairing as the report body: a timestamped header, the pair
// count and one "Pair k: nameA, nameB" line per pair in commit order.
func Render(pairs entities.Pairing, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Pairing result - %s\n", now.Format("2006-01-02 15:04:05"))
	b.WriteString(separator + "\n\n")
	fmt.Fprintf(&b, "Pairs generated: %d\n\n", len(pairs))
	for i, p := range pairs {
		fmt.Fprintf(&b, "Pair %d: %s, %s\n", i+1, p.First, p.Second)
	}
	return b.String()
}

// RenderFailure formats the notice for a search that exhausted its budget.
func RenderFailure(attempts int, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Pairing result - %s\n", now.Format("2006-01-02 15:04:05"))
	b.WriteString(separator + "\n\n")
	fmt.Fprintf(&b, "No valid pairing found within %d attempts.\n", attempts)
	return b.String()
}

// Write renders the pairing and writes it to path. An empty path derives a
// timestamped default file name in the working directory. The written path is
// returned.
func Write(pairs entities.Pairing, path string, now time.Time) (string, error) {
	if path == "" {
		path = fmt.Sprintf("pairing_result_%s.txt", now.Format("20060102_150405"))
	}
	if err := os.WriteFile(path, []byte(Render(pairs, now)), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
