package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"fixcheck/internal/config"
	"fixcheck/internal/domain"
	"fixcheck/internal/presenter"
	"fixcheck/internal/query"
)

// Formatter prints fixtures and lint results to the terminal
type Formatter struct {
	config *config.Config
	out    io.Writer
}

// NewFormatter creates a new Formatter writing to stdout
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg, out: os.Stdout}
}

// SetOutput redirects the formatter
func (f *Formatter) SetOutput(w io.Writer) {
	f.out = w
}

// PrintFixtures lists every case with its derived state for target
func (f *Formatter) PrintFixtures(catalog *domain.Catalog, target query.Target) error {
	links := presenter.Links{RepoURL: f.config.RepoURL}

	color.New(color.FgCyan, color.Bold).Fprintf(f.out, "Target version: %s\n\n", target)

	for _, fixture := range catalog.Fixtures() {
		color.New(color.FgCyan).Fprintf(f.out, "%s ", fixture.Name)
		color.New(color.FgHiBlack).Fprintf(f.out, "(%s)\n", fixture.Path)

		for i, tc := range fixture.Cases {
			p, err := presenter.New(fixture.CaseID(i), tc, target, links)
			if err != nil {
				return err
			}
			f.printCase(p.View())
		}
		fmt.Fprintln(f.out)
	}
	return nil
}

func (f *Formatter) printCase(v presenter.View) {
	if v.Complete {
		color.New(color.FgGreen).Fprint(f.out, "  [x] ")
	} else {
		fmt.Fprint(f.out, "  [ ] ")
	}
	fmt.Fprintf(f.out, "%s ", v.Title)
	color.New(color.FgHiBlack).Fprintf(f.out, "#%s\n", v.ID)

	for _, row := range v.Rows {
		value := row.Value
		if row.Issues != nil {
			value = strings.Join(row.Issues, ", ")
		}
		fmt.Fprintf(f.out, "      %-20s %s\n", row.Label, value)
	}
	if v.ShowNotice {
		color.New(color.FgYellow).Fprintf(f.out, "      Note: %s\n", presenter.NoticeText)
	}
}

// PrintLintResults reports each fixture file and returns the number of invalid ones
func (f *Formatter) PrintLintResults(results []domain.LoadResult, duration time.Duration) int {
	failed := 0
	cases := 0
	for _, r := range results {
		if r.Success() {
			cases += len(r.Fixture.Cases)
			color.New(color.FgGreen).Fprint(f.out, "✓ ")
			fmt.Fprintf(f.out, "%s ", r.Path)
			color.New(color.FgHiBlack).Fprintf(f.out, "(%d cases)\n", len(r.Fixture.Cases))
			continue
		}
		failed++
		color.New(color.FgRed).Fprintf(f.out, "✗ %s\n", r.Path)
		for _, line := range strings.Split(r.Error.Error(), "\n") {
			fmt.Fprintf(f.out, "    %s\n", line)
		}
	}

	fmt.Fprintln(f.out)
	if failed == 0 {
		color.New(color.FgGreen).Fprintf(f.out, "✓ %d fixture file(s), %d case(s) valid", len(results), cases)
	} else {
		color.New(color.FgRed).Fprintf(f.out, "✗ %d of %d fixture file(s) invalid", failed, len(results))
	}
	fmt.Fprintf(f.out, " in %s\n", duration.Round(time.Millisecond))
	return failed
}
