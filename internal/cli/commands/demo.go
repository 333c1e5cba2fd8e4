package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"specrun/internal/config"
	"specrun/internal/fizzbuzz"
	"specrun/internal/storage"
	"specrun/internal/ui"
	"specrun/report"
	"specrun/spec"
)

// DemoCommand handles the demo command
type DemoCommand struct {
	config    *config.Config
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewDemoCommand creates a new DemoCommand
func NewDemoCommand(cfg *config.Config, st storage.Storage, formatter *ui.Formatter) *DemoCommand {
	return &DemoCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (dc *DemoCommand) Execute(cmd *cobra.Command, args []string) error {
	// Declare the showcase suite
	suite := buildDemoSuite(dc.config.Flags.WithFailures)

	// Pick reporters
	var reporters []spec.Reporter
	switch dc.config.Flags.Format {
	case "text", "":
		reporters = append(reporters, report.NewStream(os.Stdout))
	case "tap":
		reporters = append(reporters, report.NewTAP())
	default:
		return fmt.Errorf("unknown format: %s", dc.config.Flags.Format)
	}
	if dc.config.Flags.Progress {
		reporters = append(reporters, report.NewProgress(suite.CaseCount()))
	}

	// Run the suite
	runner := spec.NewRunner(reporters...)
	results, sum := runner.Run(suite)

	if dc.config.Flags.NoSave {
		return nil
	}

	// Save the run record
	if err := dc.storage.Save(results, sum); err != nil {
		return fmt.Errorf("failed to save run record: %w", err)
	}

	// Print stats
	return dc.formatter.PrintRunStats()
}

// buildDemoSuite declares the FizzBuzz showcase suite. withFailures adds
// cases that fail or panic so the failures viewer has content.
func buildDemoSuite(withFailures bool) *spec.Suite {
	s := spec.New()

	s.Group("FizzBuzz", func(g *spec.Group) {
		g.Case("says Fizz for multiples of three", func() bool {
			return fizzbuzz.Say(3) == "Fizz"
		})
		g.Case("says Buzz for multiples of five", func() bool {
			return fizzbuzz.Say(5) == "Buzz"
		})
		g.Case("says FizzBuzz for multiples of fifteen", func() bool {
			return fizzbuzz.Say(15) == "FizzBuzz"
		})
		g.Case("echoes other numbers", func() bool {
			return fizzbuzz.Say(7) == "7"
		})
	})

	s.Group("truthiness", func(g *spec.Group) {
		g.Check("non-empty output counts as pass", func() any {
			return fizzbuzz.Say(9)
		})
	})

	if withFailures {
		s.Group("deliberate failures", func(g *spec.Group) {
			g.Case("seven is not Fizz", func() bool {
				return fizzbuzz.Say(7) == "Fizz"
			})
			g.Case("a broken case", func() bool {
				panic(errors.New("check blew up"))
			})
		})
	}

	return s
}
