// Package app implements the interactive calendar UI.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/almanac/pkg/agenda"
	"tableflip.dev/almanac/pkg/app"
	"tableflip.dev/almanac/pkg/model"
	"tableflip.dev/almanac/pkg/store"
	"tableflip.dev/almanac/pkg/tui/components/calendar"
	"tableflip.dev/almanac/pkg/tui/theme"
	"tableflip.dev/almanac/pkg/view"
)

// Model is the Bubble Tea model for the month navigator. It keeps a
// selected day, recomposes the month grid from the service after every
// mutation, and reloads when the store changes on disk.
type Model struct {
	svc    *app.Service
	ctx    context.Context
	cancel context.CancelFunc

	anchor time.Time
	opts   view.Options
	month  view.MonthView

	input  textinput.Model
	adding bool

	status     string
	termWidth  int
	termHeight int

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	theme theme.Theme
}

// New builds the model anchored on today.
func New(svc *app.Service, opts view.Options) *Model {
	ti := textinput.New()
	ti.Placeholder = "New event title"
	ti.CharLimit = 256
	ti.Prompt = "> "
	ti.VirtualCursor = true

	ctx, cancel := context.WithCancel(context.Background())

	m := &Model{
		svc:    svc,
		ctx:    ctx,
		cancel: cancel,
		anchor: today(),
		opts:   opts,
		input:  ti,
		theme:  theme.Default(),
	}
	m.recompose()
	return m
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func (m *Model) recompose() {
	m.month = view.ComposeMonth(m.svc.Unified(), m.svc.Notes(), m.anchor, m.opts)
}

func (m *Model) Init() tea.Cmd {
	return startWatchCmd(m.ctx, m.svc)
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// Update handles messages and keybindings.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case watchStartedMsg:
		if msg.err != nil {
			m.status = "watch unavailable: " + msg.err.Error()
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.svc.Reload()
		m.recompose()
		m.status = fmt.Sprintf("reloaded %s", msg.event.Key)
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
		cmds = append(cmds, startWatchCmd(m.ctx, m.svc))
	case tea.KeyPressMsg:
		m.handleKeyPress(msg, &cmds)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	if m.adding {
		switch msg.String() {
		case "esc":
			m.adding = false
			m.input.Blur()
			m.input.SetValue("")
		case "enter":
			title := strings.TrimSpace(m.input.Value())
			if title != "" {
				start := m.anchor.Add(9 * time.Hour)
				created := m.svc.CreateEvent(model.NewEvent(title, start, start.Add(time.Hour), model.TypeEvent))
				m.status = "added " + created.Title
				m.recompose()
			}
			m.adding = false
			m.input.Blur()
			m.input.SetValue("")
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			*cmds = append(*cmds, cmd, textinput.Blink)
		}
		return
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.stopWatch()
		m.cancel()
		*cmds = append(*cmds, tea.Quit)
	case "h", "left":
		m.moveDays(-1)
	case "l", "right":
		m.moveDays(1)
	case "k", "up":
		m.moveDays(-7)
	case "j", "down":
		m.moveDays(7)
	case "p", "pgup":
		m.moveMonths(-1)
	case "n", "pgdown":
		m.moveMonths(1)
	case "t":
		m.anchor = today()
		m.recompose()
	case "r":
		m.svc.Reload()
		m.recompose()
		m.status = "reloaded"
	case "a":
		m.adding = true
		m.input.Focus()
		*cmds = append(*cmds, textinput.Blink)
	}
}

func (m *Model) moveDays(n int) {
	prev := m.anchor.Month()
	m.anchor = m.anchor.AddDate(0, 0, n)
	if m.anchor.Month() != prev {
		m.recompose()
	}
}

func (m *Model) moveMonths(n int) {
	m.anchor = m.anchor.AddDate(0, n, 0)
	m.recompose()
}

// View renders the month grid, the detail panel for the selected day, and
// a footer with keybindings.
func (m *Model) View() string {
	title := m.theme.Detail.Title.Render(m.anchor.Format("January 2006"))
	grid := calendar.Grid(m.month, m.anchor, m.theme.Calendar)
	detail := m.theme.Detail.Frame.Render(m.dayDetail())

	footer := m.theme.Footer.Help.Render("h/l day  j/k week  n/p month  t today  a add  r reload  q quit")
	if m.status != "" {
		footer = lipgloss.JoinVertical(lipgloss.Left, m.theme.Footer.Status.Render(m.status), footer)
	}
	if m.adding {
		footer = lipgloss.JoinVertical(lipgloss.Left, m.input.View(), footer)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, grid, detail, footer)
}

func (m *Model) dayDetail() string {
	var b strings.Builder
	b.WriteString(m.theme.Detail.Title.Render(m.anchor.Format("Mon Jan 2")))

	events := agenda.EventsOnDay(m.svc.Unified(), m.anchor)
	notes := agenda.NotesOnDay(m.svc.Notes(), m.anchor)
	if len(events) == 0 && len(notes) == 0 {
		b.WriteString("\n")
		b.WriteString(m.theme.Detail.Faint.Render("nothing scheduled"))
		return b.String()
	}

	for _, e := range events {
		line := e.Title
		if e.IsLifeEvent {
			line = "♥ " + line
		} else if !e.Start.IsZero() {
			line = e.Start.Format("15:04") + " " + line
		}
		b.WriteString("\n")
		b.WriteString(m.theme.Detail.Body.Render(line))
	}
	for _, n := range notes {
		b.WriteString("\n")
		b.WriteString(m.theme.Detail.Faint.Render("* " + n.Content))
	}
	return b.String()
}

// Run launches the interactive calendar program.
func Run(svc *app.Service, opts view.Options) error {
	p := tea.NewProgram(New(svc, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
