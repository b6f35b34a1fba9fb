// Package tui hosts the Bubble Tea program for the trace UI: a today editor
// above a month-grouped view of past traces, refreshed live from the
// repository.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/trace/pkg/day"
	"tableflip.dev/trace/pkg/entry"
	"tableflip.dev/trace/pkg/journal"
	"tableflip.dev/trace/pkg/prompts"
	"tableflip.dev/trace/pkg/store"
	todayctl "tableflip.dev/trace/pkg/today"
)

type focusArea int

const (
	focusEditor focusArea = iota
	focusBrowse
)

type (
	observeStartedMsg struct {
		ch  <-chan []entry.Entry
		err error
	}
	snapshotMsg struct{ entries []entry.Entry }
	savedMsg    struct{ date day.Date }
	faultMsg    struct{ err error }
	midnightMsg struct{}
	rolledMsg   struct {
		date day.Date
		text string
	}
)

// Model contains UI state.
type Model struct {
	repo   *journal.Repository
	ctrl   *todayctl.Controller
	ctx    context.Context
	cancel context.CancelFunc

	input     textinput.Model
	observeCh <-chan []entry.Entry

	entries  []entry.Entry
	groups   []journal.MonthGroup
	flat     []entry.Entry
	selected int

	today  day.Date
	streak int
	focus  focusArea
	status string

	termWidth  int
	termHeight int

	theme Theme
}

// New creates a UI model backed by the repository.
func New(repo *journal.Repository) *Model {
	ti := textinput.New()
	ti.Placeholder = prompts.Today()
	ti.CharLimit = 512
	ti.Prompt = ""
	ti.Focus()

	ctx, cancel := context.WithCancel(context.Background())
	return &Model{
		repo:   repo,
		ctrl:   todayctl.NewController(repo),
		ctx:    ctx,
		cancel: cancel,
		input:  ti,
		today:  day.Today(),
		focus:  focusEditor,
		theme:  Default(),
	}
}

// Init subscribes to the repository, loads today's text, and arms the
// midnight rollover.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(startObserveCmd(m.ctx, m.repo), m.rolloverCmd(), midnightCmd())
}

func startObserveCmd(ctx context.Context, repo *journal.Repository) tea.Cmd {
	return func() tea.Msg {
		ch, err := repo.ObserveAll(ctx)
		return observeStartedMsg{ch: ch, err: err}
	}
}

func waitForSnapshot(ch <-chan []entry.Entry) tea.Cmd {
	return func() tea.Msg {
		entries, ok := <-ch
		if !ok {
			return nil
		}
		return snapshotMsg{entries: entries}
	}
}

func midnightCmd() tea.Cmd {
	return tea.Tick(time.Until(day.NextMidnight(time.Now())), func(time.Time) tea.Msg {
		return midnightMsg{}
	})
}

// saveCmd goes through the today controller, which validates and updates
// its held text optimistically.
func (m *Model) saveCmd(text string) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		if err := ctrl.Save(ctx, text); err != nil {
			return faultMsg{err: err}
		}
		return savedMsg{date: ctrl.Date()}
	}
}

// rolloverCmd refreshes the controller after midnight and reports the new
// date and text.
func (m *Model) rolloverCmd() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		if err := ctrl.Refresh(ctx); err != nil {
			return faultMsg{err: err}
		}
		return rolledMsg{date: ctrl.Date(), text: ctrl.Text()}
	}
}

func (m *Model) toggleCmd(e entry.Entry) tea.Cmd {
	ctx, repo := m.ctx, m.repo
	return func() tea.Msg {
		if err := repo.ToggleHighlight(ctx, e.Date, !e.Highlighted); err != nil {
			return faultMsg{err: err}
		}
		return nil
	}
}

func (m *Model) deleteCmd(e entry.Entry) tea.Cmd {
	ctx, repo := m.ctx, m.repo
	return func() tea.Msg {
		if err := repo.Delete(ctx, e.Date); err != nil {
			return faultMsg{err: err}
		}
		return nil
	}
}

// Update routes messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.input.SetWidth(max(msg.Width-4, 36))

	case observeStartedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("observe: %v", msg.err)
			break
		}
		cmds = append(cmds, waitForSnapshot(msg.ch))
		// Keep the subscription alive for the next value too.
		m.observeCh = msg.ch

	case snapshotMsg:
		m.applySnapshot(msg.entries)
		if m.observeCh != nil {
			cmds = append(cmds, waitForSnapshot(m.observeCh))
		}

	case midnightMsg:
		cmds = append(cmds, m.rolloverCmd(), midnightCmd())

	case rolledMsg:
		m.today = msg.date
		m.input.Placeholder = prompts.ForDate(m.today)
		m.input.SetValue(msg.text)
		m.streak = streakUpTo(m.entries, m.today)

	case savedMsg:
		m.status = fmt.Sprintf("saved %s", msg.date)

	case faultMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		}

	case tea.KeyPressMsg:
		if done, cmd := m.handleKey(msg); done {
			return m, cmd
		} else if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	if m.focus == focusEditor {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.cancel()
		return true, tea.Quit
	case "tab":
		if m.focus == focusEditor {
			m.focus = focusBrowse
			m.input.Blur()
		} else {
			m.focus = focusEditor
			if cmd := m.input.Focus(); cmd != nil {
				return true, cmd
			}
		}
		return true, nil
	}

	if m.focus == focusEditor {
		if msg.String() == "enter" {
			return true, m.saveCmd(m.input.Value())
		}
		return false, nil
	}

	switch msg.String() {
	case "q":
		m.cancel()
		return true, tea.Quit
	case "j", "down":
		if m.selected < len(m.flat)-1 {
			m.selected++
		}
		return true, nil
	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
		return true, nil
	case "h":
		if e, ok := m.selectedEntry(); ok {
			return true, m.toggleCmd(e)
		}
		return true, nil
	case "x":
		if e, ok := m.selectedEntry(); ok {
			return true, m.deleteCmd(e)
		}
		return true, nil
	}
	return false, nil
}

func (m *Model) selectedEntry() (entry.Entry, bool) {
	if m.selected < 0 || m.selected >= len(m.flat) {
		return entry.Entry{}, false
	}
	return m.flat[m.selected], true
}

func (m *Model) applySnapshot(entries []entry.Entry) {
	m.entries = entries
	m.groups = journal.GroupByMonth(entries)
	m.flat = entries
	if m.selected >= len(m.flat) {
		m.selected = len(m.flat) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.streak = streakUpTo(entries, m.today)
	// The editor owns its text while focused; otherwise track the store.
	if m.focus != focusEditor {
		m.input.SetValue(m.todayText())
	} else if m.input.Value() == "" {
		m.input.SetValue(m.todayText())
	}
}

func (m *Model) todayText() string {
	for _, e := range m.entries {
		if e.Date == m.today {
			return e.Text
		}
	}
	return ""
}

// streakUpTo counts consecutive entry-bearing days ending at d over a
// snapshot, mirroring the repository derivation for local redraws.
func streakUpTo(entries []entry.Entry, d day.Date) int {
	byDate := make(map[day.Date]struct{}, len(entries))
	for _, e := range entries {
		byDate[e.Date] = struct{}{}
	}
	count := 0
	for ; ; d = d.Add(-1) {
		if _, ok := byDate[d]; !ok {
			break
		}
		count++
	}
	return count
}

// View renders the editor above the browse pane.
func (m *Model) View() string {
	width := m.termWidth
	if width < 40 {
		width = 40
	}
	inner := width - 4

	header := m.theme.Header.Render(m.today.Format("Monday, January 2, 2006"))
	prompt := m.theme.Prompt.Render(prompts.ForDate(m.today))

	editorFrame := m.theme.FrameBlur
	if m.focus == focusEditor {
		editorFrame = m.theme.Frame
	}
	editor := editorFrame.Width(width - 2).Render(m.input.View())

	browseFrame := m.theme.FrameBlur
	if m.focus == focusBrowse {
		browseFrame = m.theme.Frame
	}
	browse := browseFrame.Width(width - 2).Render(m.viewBrowse(inner))

	footer := m.viewFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, prompt, editor, browse, footer)
}

func (m *Model) viewBrowse(width int) string {
	if len(m.groups) == 0 {
		return m.theme.Prompt.Render("no traces yet")
	}

	maxRows := m.termHeight - 10
	if maxRows < 4 {
		maxRows = 4
	}

	var b strings.Builder
	rows := 0
	idx := 0
	for _, g := range m.groups {
		if rows >= maxRows {
			break
		}
		b.WriteString(m.theme.Month.Render(g.Title()))
		b.WriteByte('\n')
		rows++
		for _, e := range g.Entries {
			if rows >= maxRows {
				break
			}
			line := m.renderEntry(e, width, idx == m.selected && m.focus == focusBrowse)
			b.WriteString(line)
			b.WriteByte('\n')
			rows++
			idx++
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderEntry(e entry.Entry, width int, selected bool) string {
	star := "  "
	if e.Highlighted {
		star = m.theme.Star.Render("★ ")
	}
	date := m.theme.Date.Render(e.Date.Format("02 Mon"))
	text := wordwrap.String(e.FirstLine(), max(width-12, 16))
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i] + "…"
	}
	line := fmt.Sprintf("%s  %s%s", date, star, text)
	if selected {
		return m.theme.Selected.Render(line)
	}
	return line
}

func (m *Model) viewFooter() string {
	left := ""
	if m.streak > 1 {
		left = fmt.Sprintf("%d days in a row", m.streak)
	}
	help := "tab focus · enter save · h highlight · x delete · q quit"
	parts := []string{}
	if left != "" {
		parts = append(parts, m.theme.Status.Render(left))
	}
	if m.status != "" {
		parts = append(parts, m.theme.Status.Render(m.status))
	}
	parts = append(parts, m.theme.Help.Render(help))
	return strings.Join(parts, "  ·  ")
}

// Run launches the Bubble Tea UI, tracking external writers via the store's
// filesystem watcher when one is provided.
func Run(repo *journal.Repository, per store.Persistence) error {
	m := New(repo)
	defer m.cancel()
	if per != nil {
		if err := per.Watch(m.ctx); err != nil {
			return err
		}
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
