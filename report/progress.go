package report

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"specrun/spec"
)

// Progress renders a progress bar with live passed/failed counts while a
// suite runs.
type Progress struct {
	bar    *progressbar.ProgressBar
	passed int
	failed int
}

// NewProgress creates a progress bar for a run of total cases.
func NewProgress(total int) *Progress {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription(
			color.CyanString("Running cases: ")+
				color.GreenString("[passed: 0")+
				" | "+
				color.RedString("failed: 0]"),
		),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
	return &Progress{bar: bar}
}

// BeginGroup is a no-op; the bar tracks cases only.
func (p *Progress) BeginGroup(string) {}

// Report advances the bar; Errored counts into the failed bucket.
func (p *Progress) Report(r spec.Result) {
	if r.Outcome == spec.Passed {
		p.passed++
	} else {
		p.failed++
	}
	p.bar.Set(p.passed + p.failed)
	p.bar.Describe(
		color.CyanString("Running cases: ") +
			color.GreenString("[passed: %d", p.passed) +
			" | " +
			color.RedString("failed: %d]", p.failed),
	)
}

// Finish completes the bar.
func (p *Progress) Finish(spec.Summary) {
	p.bar.Finish()
}
