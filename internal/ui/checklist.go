package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"fixcheck/internal/config"
	"fixcheck/internal/domain"
	"fixcheck/internal/presenter"
	"fixcheck/internal/query"
)

// checklistItem is one mounted case in the checklist
type checklistItem struct {
	fixture string
	tc      *presenter.TestCase
}

// Checklist lets an operator work through test cases in a terminal
type Checklist struct {
	config *config.Config
}

// NewChecklist creates a new Checklist
func NewChecklist(cfg *config.Config) *Checklist {
	return &Checklist{config: cfg}
}

// mount creates one presenter per case against a single target snapshot
func (c *Checklist) mount(catalog *domain.Catalog, target query.Target) ([]checklistItem, error) {
	links := presenter.Links{RepoURL: c.config.RepoURL}
	var items []checklistItem
	for _, fixture := range catalog.Fixtures() {
		for i, tc := range fixture.Cases {
			p, err := presenter.New(fixture.CaseID(i), tc, target, links)
			if err != nil {
				return nil, err
			}
			items = append(items, checklistItem{fixture: fixture.Name, tc: p})
		}
	}
	return items, nil
}

// Run shows the checklist until the operator quits. Checks live only for
// the duration of the run.
func (c *Checklist) Run(catalog *domain.Catalog, target query.Target) error {
	items, err := c.mount(catalog, target)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		color.Yellow("No test cases found")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, item := range items {
		list.AddItem(formatItem(i, item.tc.View()), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 2, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(formatHeader(target, items))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(items) {
			return
		}
		item := items[index]
		statsView.SetText(formatStats(item.fixture, item.tc.View()))
		detailsView.SetText(formatDetails(item.tc.View()))
		detailsView.ScrollToBeginning()
	}

	toggle := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(items) {
			return
		}
		items[index].tc.Toggle()
		list.SetItemText(index, formatItem(index, items[index].tc.View()), "")
		updateHeader()
		updateDetails()
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case ' ', 'x', 'X':
				toggle()
				return nil
			case 'q':
				app.Stop()
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

	updateHeader()
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func formatHeader(target query.Target, items []checklistItem) string {
	complete := 0
	for _, item := range items {
		if item.tc.Complete() {
			complete++
		}
	}
	return fmt.Sprintf(" Target [yellow]%s[white] | %d/%d complete | ↑↓ navigate, [yellow]space[white] toggle, → details, ← back, q quit ",
		tview.Escape(target.String()), complete, len(items))
}

// formatItem renders a list row
func formatItem(index int, v presenter.View) string {
	title := tview.Escape(v.Title)
	if v.Complete {
		return fmt.Sprintf("[green]%s[white] [gray]%d. %s[white]", tview.Escape("[x]"), index+1, title)
	}
	return fmt.Sprintf("%s [yellow]%d.[white] %s", tview.Escape("[ ]"), index+1, title)
}

func formatStats(fixture string, v presenter.View) string {
	return fmt.Sprintf("[cyan]fixture:[white] [yellow]%s[white] :: [yellow]%s[white]\n",
		tview.Escape(fixture), tview.Escape(v.ID))
}

// formatDetails renders a case with tview color tags
func formatDetails(v presenter.View) string {
	var b strings.Builder

	if v.Complete {
		fmt.Fprintf(&b, "[green]✓ %s[white]\n\n", tview.Escape(v.Title))
	} else {
		fmt.Fprintf(&b, "[white::b]%s[white::-]\n\n", tview.Escape(v.Title))
	}

	for _, row := range v.Rows {
		value := row.Value
		if row.Issues != nil {
			value = strings.Join(row.Issues, ", ")
		}
		fmt.Fprintf(&b, "[cyan]%s[white] %s", row.Label, tview.Escape(value))
		if row.Href != "" {
			fmt.Fprintf(&b, " [gray](%s)[white]", tview.Escape(row.Href))
		}
		b.WriteString("\n")
	}
	if len(v.Rows) > 0 {
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s\n\n", tview.Escape(v.Description))

	if v.ShowNotice {
		fmt.Fprintf(&b, "[yellow]Note:[white] %s\n\n", tview.Escape(presenter.NoticeText))
	}

	if len(v.Steps) > 0 {
		fmt.Fprintf(&b, "[yellow]%s[white]\n", presenter.StepsHeading)
		for i, step := range v.Steps {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, tview.Escape(step))
		}
		b.WriteString("\n")
	}
	if v.ExpectedResult != "" {
		fmt.Fprintf(&b, "[yellow]%s[white]\n%s\n", presenter.ExpectedResultHeading, tview.Escape(v.ExpectedResult))
	}

	return b.String()
}
