package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"specrun/internal/domain"
	"specrun/internal/storage"
)

// Viewer displays run failures in an interactive TUI
type Viewer interface {
	View(rec *domain.RunRecord) error
}

// FailureViewer displays failed and errored cases from the last run
type FailureViewer struct {
	storage storage.Storage
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(st storage.Storage) *FailureViewer {
	return &FailureViewer{storage: st}
}

// View displays the record's failures in an interactive TUI
func (fv *FailureViewer) View(rec *domain.RunRecord) error {
	if len(rec.Details) == 0 {
		color.Green("✓ No failures in the last run!")
		return nil
	}

	// Track reviewed cases (by index) - loaded from the record
	reviewed := make(map[int]bool)
	for i, failure := range rec.Details {
		if failure.Reviewed {
			reviewed[i] = true
		}
	}

	saveReviewed := func() error {
		for i := range rec.Details {
			rec.Details[i].Reviewed = reviewed[i]
		}
		return fv.storage.SaveRecord(rec)
	}

	app := tview.NewApplication()

	// List of failures (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	listItemText := func(index int) string {
		failure := rec.Details[index]
		label := failure.Label
		if label == "" {
			label = fmt.Sprintf("Case %d", index+1)
		}
		if reviewed[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, label)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, label)
	}

	updateListItem := func(index int) {
		if index < 0 || index >= list.GetItemCount() {
			return
		}
		list.SetItemText(index, listItemText(index), "")
	}

	for i := range rec.Details {
		list.AddItem(listItemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	// Details pane (right side)
	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	countUnreviewed := func() int {
		count := 0
		for i := range rec.Details {
			if !reviewed[i] {
				count++
			}
		}
		return count
	}

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" Case Failures (%d total, %d unreviewed) | ↑↓ navigate, [yellow]R[white] mark reviewed, → details, ← back, Ctrl+C exit ",
			len(rec.Details), countUnreviewed()))
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(rec.Details) {
			detailsView.SetText(formatFailureDetails(rec.Details[index]))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(rec.Details) {
					reviewed[index] = !reviewed[index]
					updateListItem(index)
					updateHeader()
					updateDetails()
					if err := saveReviewed(); err != nil {
						_ = err
					}
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// formatFailureDetails formats one failure for display using tview color tags ([red], [cyan], etc.)
func formatFailureDetails(failure domain.CaseFailure) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[red]✗ Case: %s[white]\n\n", failure.Label)
	if failure.Group != "" {
		fmt.Fprintf(&builder, "[cyan]Group: %s[white]\n\n", failure.Group)
	}
	fmt.Fprintf(&builder, "[yellow]Outcome:[white] %s\n", failure.Outcome)
	if failure.Message != "" {
		fmt.Fprintf(&builder, "\n[yellow]Message:[white]\n%s\n", failure.Message)
	}

	return builder.String()
}
