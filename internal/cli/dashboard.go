package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tempo/internal/cli/formatter"
	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/repository"
	"github.com/alexanderramin/tempo/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// runDashboard starts the interactive dashboard. The dashboard process owns
// the transient session, so start/stop only exist here.
func runDashboard(app *App) error {
	p := tea.NewProgram(newDashboardModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// ── messages ─────────────────────────────────────────────────────────────────

// tickMsg drives the once-per-second refresh of the elapsed display. The
// tick only re-renders; it never mutates tracker or store state.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// dataLoadedMsg carries a full reload of projects, entries, and totals.
type dataLoadedMsg struct {
	projects []*domain.Project
	entries  []repository.EntryWithProject
	totals   *domain.Totals
	err      error
}

// actionDoneMsg reports the outcome of a start/stop/add/export action.
type actionDoneMsg struct {
	status string
	err    error
	reload bool
}

// ── model ────────────────────────────────────────────────────────────────────

type formKind int

const (
	formNone formKind = iota
	formAddProject
	formStopNote
	formExport
)

type dashboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Add     key.Binding
	Start   key.Binding
	Stop    key.Binding
	Export  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func defaultDashboardKeyMap() dashboardKeyMap {
	return dashboardKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add project")),
		Start:   key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s/enter", "start")),
		Stop:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "stop")),
		Export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type dashboardModel struct {
	app  *App
	keys dashboardKeyMap

	projects []*domain.Project
	entries  []repository.EntryWithProject
	totals   *domain.Totals
	cursor   int

	width  int
	height int

	// formValue is allocated fresh each time a form opens. The model is
	// copied on every Update, so the huh input must write through a pointer
	// to the heap, never to a field address of some copy.
	form      *huh.Form
	activeKey formKind
	formValue *string

	status   string
	err      error
	quitting bool
}

func newDashboardModel(app *App) dashboardModel {
	return dashboardModel{
		app:  app,
		keys: defaultDashboardKeyMap(),
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.loadData(), tickCmd())
}

// ── data loading and actions ─────────────────────────────────────────────────

func (m dashboardModel) loadData() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()

		projects, err := app.Projects.List(ctx)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		entries, err := app.Reports.Entries(ctx)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		totals, err := app.Reports.Totals(ctx)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		return dataLoadedMsg{projects: projects, entries: entries, totals: totals}
	}
}

func (m dashboardModel) startSelected() tea.Cmd {
	if len(m.projects) == 0 {
		return func() tea.Msg {
			return actionDoneMsg{err: fmt.Errorf("no projects; press a to add one")}
		}
	}
	project := m.projects[m.cursor]
	app := m.app
	return func() tea.Msg {
		sess, err := app.Tracker.Start(context.Background(), project.ID)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: fmt.Sprintf("Timer started on %s", sess.ProjectName)}
	}
}

func (m dashboardModel) stopWithNote(note string) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		entry, err := app.Tracker.Stop(context.Background(), note)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{
			status: fmt.Sprintf("Recorded %s", formatter.FormatHMS(entry.DurationSec)),
			reload: true,
		}
	}
}

func (m dashboardModel) addProject(name string) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		p, err := app.Projects.Create(context.Background(), name)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: fmt.Sprintf("Added project %q", p.Name), reload: true}
	}
}

func (m dashboardModel) exportTo(path string) tea.Cmd {
	app := m.app
	if path == "" {
		path = app.DefaultExportPath
	}
	return func() tea.Msg {
		n, err := app.Export.ExportFile(context.Background(), path)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: fmt.Sprintf("Exported %d entries to %s", n, path)}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// Re-render only; Elapsed is a pure read.
		return m, tickCmd()

	case dataLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.projects = msg.projects
		m.entries = msg.entries
		m.totals = msg.totals
		if m.cursor >= len(m.projects) {
			m.cursor = max(0, len(m.projects)-1)
		}
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = ""
			return m, nil
		}
		m.err = nil
		m.status = msg.status
		if msg.reload {
			return m, m.loadData()
		}
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}
	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.projects)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Add):
		m.formValue = new(string)
		m.form = addProjectForm(m.formValue)
		m.activeKey = formAddProject
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Start):
		return m, m.startSelected()

	case key.Matches(msg, m.keys.Stop):
		if m.app.Tracker.Active() == nil {
			m.err = service.ErrTimerNotRunning
			return m, nil
		}
		m.formValue = new(string)
		m.form = stopNoteForm(m.formValue)
		m.activeKey = formStopNote
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Export):
		m.formValue = new(string)
		m.form = exportPathForm(m.formValue, m.app.DefaultExportPath)
		m.activeKey = formExport
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadData()
	}
	return m, nil
}

func (m dashboardModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.form = nil
		m.activeKey = formNone
		m.formValue = nil
		m.status = "Cancelled"
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		kind := m.activeKey
		value := ""
		if m.formValue != nil {
			value = *m.formValue
		}
		m.form = nil
		m.activeKey = formNone
		m.formValue = nil

		switch kind {
		case formAddProject:
			return m, m.addProject(value)
		case formStopNote:
			return m, m.stopWithNote(value)
		case formExport:
			return m, m.exportTo(value)
		}
		return m, nil
	}

	return m, cmd
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m dashboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("TEMPO"))
	b.WriteString("\n\n")

	b.WriteString(m.timerLine())
	b.WriteString("\n\n")

	if m.form != nil {
		b.WriteString(m.form.View())
		b.WriteString("\n")
		return b.String()
	}

	if m.totals != nil {
		b.WriteString(formatter.TotalsLine(m.totals))
		b.WriteString("\n\n")
	}

	b.WriteString(m.projectPane())
	b.WriteString("\n")
	b.WriteString(m.entriesPane())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render(errorText(m.err)))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(formatter.StyleYellow.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(formatter.StyleDim.Render("a add · s start · x stop · e export · r refresh · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m dashboardModel) timerLine() string {
	active := m.app.Tracker.Active()
	if active == nil {
		return formatter.StyleDim.Render("■ idle") + "  " + formatter.StyleDim.Render("00:00:00")
	}
	elapsed := formatter.FormatHMS(m.app.Tracker.Elapsed())
	return formatter.StyleGreen.Render("▶ "+active.ProjectName) + "  " +
		formatter.StyleBold.Render(elapsed)
}

func (m dashboardModel) projectPane() string {
	if len(m.projects) == 0 {
		return formatter.StyleDim.Render("No projects yet. Press a to add one.") + "\n"
	}
	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("Projects"))
	b.WriteString("\n")
	for i, p := range m.projects {
		marker := "  "
		line := p.Name
		if i == m.cursor {
			marker = formatter.StyleHeader.Render("▸ ")
			line = formatter.StyleBold.Render(p.Name)
		}
		b.WriteString(marker + line + "\n")
	}
	return b.String()
}

const entriesPaneLimit = 8

func (m dashboardModel) entriesPane() string {
	rows := m.entries
	if len(rows) > entriesPaneLimit {
		rows = rows[:entriesPaneLimit]
	}
	return formatter.EntriesTable(rows)
}

// errorText maps known sentinels to short messages for the status line.
func errorText(err error) string {
	switch {
	case errors.Is(err, service.ErrTimerRunning):
		return "Timer already running; stop it first"
	case errors.Is(err, service.ErrTimerNotRunning):
		return "No timer running"
	case errors.Is(err, repository.ErrDuplicateProject):
		return "A project with that name already exists"
	default:
		return err.Error()
	}
}
