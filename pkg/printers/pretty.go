// Package printers renders journal views for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/trace/pkg/entry"
	"tableflip.dev/trace/pkg/journal"
)

const highlightMark = "★"

type PrettyPrint struct {
	// ShowUpdated adds the last-updated timestamp to each row.
	ShowUpdated bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Month prints one month group: heading plus its entries.
func (pp *PrettyPrint) Month(g journal.MonthGroup) {
	pp.TitleWithCount(g.Title(), len(g.Entries))
	pp.Entries(g.Entries...)
}

// Entries prints rows as "31 Mon  ★ text", one per entry, continuation
// lines indented under the text column.
func (pp *PrettyPrint) Entries(entries ...entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	d := color.New(color.Faint)
	y := color.New(color.FgHiYellow)
	u := color.New(color.Faint, color.Italic)

	for _, e := range entries {
		_, _ = d.Printf("%s  ", e.Date.Format("02 Mon"))
		if e.Highlighted {
			_, _ = y.Printf("%s ", highlightMark)
		} else {
			_, _ = t.Print("  ")
		}
		lines := strings.Split(e.Text, "\n")
		_, _ = t.Println(lines[0])
		for _, line := range lines[1:] {
			_, _ = t.Printf("%s%s\n", strings.Repeat(" ", len("02 Mon  x ")), line)
		}
		if pp.ShowUpdated {
			_, _ = u.Printf("%supdated %s\n", strings.Repeat(" ", len("02 Mon  x ")), e.Updated.Format("2006-01-02 15:04"))
		}
	}
	_, _ = t.Println("")
}

// Stats renders the info table: totals, streak, span.
func (pp *PrettyPrint) Stats(total, highlighted, streak int, first, last string) {
	tbl := uitable.New()
	tbl.Separator = "  "

	tbl.AddRow("entries", fmt.Sprintf("%d", total))
	tbl.AddRow("highlighted", fmt.Sprintf("%d", highlighted))
	tbl.AddRow("streak", fmt.Sprintf("%d", streak))
	if total > 0 {
		tbl.AddRow("first", first)
		tbl.AddRow("latest", last)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
