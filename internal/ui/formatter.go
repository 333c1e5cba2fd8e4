package ui

import (
	"fmt"

	"github.com/fatih/color"

	"specrun/internal/config"
	"specrun/internal/domain"
	"specrun/internal/storage"
)

// Formatter formats and displays run statistics
type Formatter struct {
	config  *config.Config
	storage storage.Storage
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, st storage.Storage) *Formatter {
	return &Formatter{config: cfg, storage: st}
}

// PrintRunStats reads the last run record and displays its statistics
func (f *Formatter) PrintRunStats() error {
	rec, err := f.storage.Load()
	if err != nil {
		return err
	}

	meta := rec.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                      Suite Run Statistics                     ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Cases")
	color.White("%-27d │\n", meta.TotalCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Cases")
	color.Green("%-27d │\n", meta.PassedCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Cases")
	color.Red("%-27d │\n", meta.FailedCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Errored Cases")
	color.Yellow("%-27d │\n", meta.ErroredCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-27s │\n", durationStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.FailedCases == 0 && meta.ErroredCases == 0 {
		color.Green("✓ All cases passed!")
	} else {
		color.Red("✗ %d case(s) failed, %d errored", meta.FailedCases, meta.ErroredCases)
		fmt.Println()
		f.printFailureTree(rec.Details)
	}

	return nil
}

// groupedFailures is one group label with its failures, in record order
type groupedFailures struct {
	Group    string
	Failures []domain.CaseFailure
}

// groupFailures partitions failures by group label, preserving the order
// in which groups first appear.
func groupFailures(failures []domain.CaseFailure) []groupedFailures {
	var groups []groupedFailures
	index := make(map[string]int)
	for _, failure := range failures {
		i, ok := index[failure.Group]
		if !ok {
			i = len(groups)
			index[failure.Group] = i
			groups = append(groups, groupedFailures{Group: failure.Group})
		}
		groups[i].Failures = append(groups[i].Failures, failure)
	}
	return groups
}

// printFailureTree prints failures as a group → case tree
func (f *Formatter) printFailureTree(failures []domain.CaseFailure) {
	if len(failures) == 0 {
		return
	}

	for _, g := range groupFailures(failures) {
		label := g.Group
		if label == "" {
			label = "(top level)"
		}
		color.Cyan("%s", label)
		for i, failure := range g.Failures {
			connector := "  ├_"
			if i == len(g.Failures)-1 {
				connector = "  └_"
			}
			if failure.Outcome == "Errored" {
				color.Yellow("%s %s (%s)", connector, failure.Label, failure.Message)
			} else {
				color.Red("%s %s", connector, failure.Label)
			}
		}
	}
}
