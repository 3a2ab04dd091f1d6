package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/gestor/internal/app"
	"github.com/dori/gestor/internal/model"
	"github.com/dori/gestor/internal/notify"
	"github.com/dori/gestor/internal/store"
	"github.com/dori/gestor/internal/ui/theme"
	"go.uber.org/zap"
)

// Deps are the stores and services the root model drives
type Deps struct {
	Accounts *store.AccountStore
	Tasks    *store.TaskStore
	Projects *store.ProjectStore
	Changes  *store.Changes
	Notifier *notify.Notifier
	Log      *zap.Logger
}

// RootModel is the main application model. Stores are only touched from
// Update, never from a tea.Cmd.
type RootModel struct {
	accounts *store.AccountStore
	tasks    *store.TaskStore
	projects *store.ProjectStore
	notifier *notify.Notifier
	log      *zap.Logger

	keys   KeyMap
	help   help.Model
	width  int
	height int

	screen Screen
	user   string
	pane   Pane
	cursor [2]int

	taskList    []model.Task
	projectList []model.Project

	auth    fieldForm
	form    *fieldForm
	confirm *pendingDelete

	status      string
	failed      bool
	helpVisible bool

	// changes queued by the feed subscription, drained after every Update
	changes     *[]store.Change
	unsubscribe func()
}

// NewRootModel creates a new root model over the application stores
func NewRootModel(a *app.App) RootModel {
	return New(Deps{
		Accounts: a.Accounts,
		Tasks:    a.Tasks,
		Projects: a.Projects,
		Changes:  a.Changes,
		Notifier: a.Notifier,
		Log:      a.Log,
	})
}

// New creates a root model from explicit dependencies
func New(d Deps) RootModel {
	h := help.New()
	h.ShowAll = false
	styles := theme.Current.Styles
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc
	h.Styles.FullKey = styles.HelpKey
	h.Styles.FullDesc = styles.HelpDesc

	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}

	m := RootModel{
		accounts: d.Accounts,
		tasks:    d.Tasks,
		projects: d.Projects,
		notifier: d.Notifier,
		log:      log,
		keys:     DefaultKeyMap(),
		help:     h,
		screen:   ScreenAuth,
		pane:     PaneTasks,
		changes:  &[]store.Change{},
	}
	m.resetAuth()

	if d.Changes != nil {
		queue := m.changes
		m.unsubscribe = d.Changes.Subscribe(func(c store.Change) {
			*queue = append(*queue, c)
		})
	}

	m.refresh(store.TasksKey)
	m.refresh(store.ProjectsKey)
	return m
}

// Init initializes the model
func (m RootModel) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("gestor"), textinput.Blink)
}

// Update handles messages
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Abort) {
			return m.quit()
		}

		switch {
		case m.screen == ScreenAuth:
			m, cmd = m.updateAuth(msg)
		case m.confirm != nil:
			m = m.updateConfirm(msg)
		case m.form != nil:
			m, cmd = m.updateForm(msg)
		default:
			m, cmd = m.updateBoard(msg)
		}

	default:
		// cursor blink and friends
		if m.screen == ScreenAuth {
			m.auth, cmd = m.auth.Update(msg)
		} else if m.form != nil {
			var f fieldForm
			f, cmd = m.form.Update(msg)
			m.form = &f
		}
	}

	m.drainChanges()
	return m, cmd
}

func (m RootModel) quit() (RootModel, tea.Cmd) {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	return m, tea.Quit
}

func (m RootModel) updateAuth(msg tea.KeyMsg) (RootModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ToggleMode):
		m.accounts.ToggleMode()
		m.resetAuth()
		m.status = ""
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Submit):
		form := m.accounts.Form()
		registering := form.Registering
		form.Fields = registration(m.auth)

		name, err := m.accounts.SubmitForm()
		if err != nil {
			m.report("", err)
			return m, nil
		}
		if registering {
			m.report(store.MsgRegistered, nil)
			m.resetAuth()
			return m, textinput.Blink
		}

		m.user = name
		m.screen = ScreenBoard
		m.resetAuth()
		m.report(store.MsgLoggedIn, nil)
		return m, nil
	}

	var cmd tea.Cmd
	m.auth, cmd = m.auth.Update(msg)
	return m, cmd
}

func (m RootModel) updateBoard(msg tea.KeyMsg) (RootModel, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
		m.help.ShowAll = m.helpVisible

	case key.Matches(msg, m.keys.Up):
		if m.cursor[m.pane] > 0 {
			m.cursor[m.pane]--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor[m.pane] < m.rows()-1 {
			m.cursor[m.pane]++
		}

	case key.Matches(msg, m.keys.TasksPane):
		m.pane = PaneTasks

	case key.Matches(msg, m.keys.ProjectsPane):
		m.pane = PaneProjects

	case key.Matches(msg, m.keys.SwitchPane):
		m.pane = m.pane.Other()

	case key.Matches(msg, m.keys.Add):
		var f fieldForm
		if m.pane == PaneTasks {
			m.tasks.StageNew()
			f = taskForm("New task", m.keys, m.tasks.Form().Draft())
		} else {
			m.projects.StageNew()
			f = projectForm("New project", m.keys, m.projects.Form().Draft())
		}
		m.form = &f
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		id, ok := m.selectedID()
		if !ok {
			return m, nil
		}
		var f fieldForm
		if m.pane == PaneTasks {
			if err := m.tasks.StageEdit(id); err != nil {
				m.report("", err)
				return m, nil
			}
			f = taskForm("Edit task", m.keys, m.tasks.Form().Draft())
		} else {
			if err := m.projects.StageEdit(id); err != nil {
				m.report("", err)
				return m, nil
			}
			f = projectForm("Edit project", m.keys, m.projects.Form().Draft())
		}
		m.form = &f
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Complete):
		if m.pane != PaneTasks {
			return m, nil
		}
		id, ok := m.selectedID()
		if !ok {
			return m, nil
		}
		if t, _ := m.tasks.Get(id); t.IsCompleted() {
			m.status = "Task is already completed."
			return m, nil
		}
		m.report(store.MsgTaskCompleted, m.tasks.Complete(id))

	case key.Matches(msg, m.keys.Delete):
		id, ok := m.selectedID()
		if !ok {
			return m, nil
		}
		prompt := store.DeleteTaskPrompt
		if m.pane == PaneProjects {
			prompt = store.DeleteProjectPrompt
		}
		m.confirm = &pendingDelete{pane: m.pane, id: id, prompt: prompt}

	case key.Matches(msg, m.keys.Logout):
		m.user = ""
		m.screen = ScreenAuth
		m.helpVisible = false
		m.help.ShowAll = false
		m.resetAuth()
		m.status = "Logged out."
		m.failed = false
		return m, textinput.Blink
	}

	return m, nil
}

func (m RootModel) updateForm(msg tea.KeyMsg) (RootModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		if m.pane == PaneTasks {
			m.tasks.Discard()
		} else {
			m.projects.Discard()
		}
		m.form = nil
		m.status = store.MsgCancelled
		m.failed = false
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		var (
			id      int
			err     error
			success string
		)
		if m.pane == PaneTasks {
			m.tasks.Form().Set(taskDraft(*m.form))
			var t model.Task
			t, err = m.tasks.Commit()
			id, success = t.ID, store.MsgTaskSaved
		} else {
			m.projects.Form().Set(projectDraft(*m.form))
			var p model.Project
			p, err = m.projects.Commit()
			id, success = p.ID, store.MsgProjectSaved
		}
		if err != nil {
			// the form stays open with the rejected input
			m.report("", err)
			return m, nil
		}
		m.form = nil
		m.drainChanges()
		m.selectID(id)
		m.report(success, nil)
		return m, nil
	}

	f, cmd := m.form.Update(msg)
	m.form = &f
	return m, cmd
}

func (m RootModel) updateConfirm(msg tea.KeyMsg) RootModel {
	var answer bool
	switch {
	case key.Matches(msg, m.keys.Yes):
		answer = true
	case key.Matches(msg, m.keys.No):
		answer = false
	default:
		return m
	}

	pending := *m.confirm
	m.confirm = nil
	confirm := func(string) bool { return answer }

	var (
		deleted bool
		err     error
		success = store.MsgTaskDeleted
	)
	if pending.pane == PaneTasks {
		deleted, err = m.tasks.Delete(pending.id, confirm)
	} else {
		deleted, err = m.projects.Delete(pending.id, confirm)
		success = store.MsgProjectDeleted
	}

	switch {
	case err != nil:
		m.report("", err)
	case !deleted:
		m.status = store.MsgCancelled
		m.failed = false
	default:
		m.report(success, nil)
	}
	return m
}

// report shows the outcome of a store operation and forwards it to the
// desktop notifier
func (m *RootModel) report(msg string, err error) {
	m.status, m.failed = msg, false
	if err != nil {
		m.status, m.failed = store.Message(err), true
	}
	if nerr := m.notifier.Result("gestor", m.status, m.failed); nerr != nil {
		m.log.Warn("failed to send notification", zap.Error(nerr))
	}
}

func (m *RootModel) resetAuth() {
	f := m.accounts.Form()
	m.auth = authForm(m.keys, f.Registering, f.Fields)
}

// drainChanges refreshes the cached list of every collection that changed
func (m *RootModel) drainChanges() {
	if len(*m.changes) == 0 {
		return
	}
	for _, c := range *m.changes {
		m.refresh(c.Key)
	}
	*m.changes = (*m.changes)[:0]
}

func (m *RootModel) refresh(key string) {
	switch key {
	case store.TasksKey:
		m.taskList = m.tasks.Tasks()
		m.clamp(PaneTasks, len(m.taskList))
	case store.ProjectsKey:
		m.projectList = m.projects.Projects()
		m.clamp(PaneProjects, len(m.projectList))
	}
}

func (m *RootModel) clamp(p Pane, n int) {
	if m.cursor[p] >= n {
		m.cursor[p] = n - 1
	}
	if m.cursor[p] < 0 {
		m.cursor[p] = 0
	}
}

func (m RootModel) rows() int {
	if m.pane == PaneProjects {
		return len(m.projectList)
	}
	return len(m.taskList)
}

func (m RootModel) selectedID() (int, bool) {
	i := m.cursor[m.pane]
	if m.pane == PaneProjects {
		if i < len(m.projectList) {
			return m.projectList[i].ID, true
		}
		return 0, false
	}
	if i < len(m.taskList) {
		return m.taskList[i].ID, true
	}
	return 0, false
}

func (m *RootModel) selectID(id int) {
	if m.pane == PaneProjects {
		for i, p := range m.projectList {
			if p.ID == id {
				m.cursor[m.pane] = i
			}
		}
		return
	}
	for i, t := range m.taskList {
		if t.ID == id {
			m.cursor[m.pane] = i
		}
	}
}

// Screen returns the screen currently shown
func (m RootModel) Screen() Screen {
	return m.screen
}

// User returns the greeting name of the logged in user, empty when logged out
func (m RootModel) User() string {
	return m.user
}

// Status returns the last result message and whether it reports a failure
func (m RootModel) Status() (string, bool) {
	return m.status, m.failed
}

// View renders the UI
func (m RootModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	var content string
	switch {
	case m.screen == ScreenAuth:
		content = m.renderModal(m.auth.View())
	case m.form != nil:
		content = m.renderModal(m.form.View())
	case m.pane == PaneProjects:
		content = m.renderProjects()
	default:
		content = m.renderTasks()
	}

	// header, status and help take four lines
	contentHeight := m.height - 4
	if lines := strings.Count(content, "\n") + 1; lines < contentHeight {
		content += strings.Repeat("\n", contentHeight-lines)
	}
	sections = append(sections, content)
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

func (m RootModel) renderHeader() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	title := styles.Header.Render("gestor")
	if m.screen == ScreenAuth {
		return title
	}

	tab := func(p Pane, k string) string {
		label := fmt.Sprintf("[%s] %s", k, p)
		if p == m.pane {
			return lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Padding(0, 1).Render(label)
		}
		return lipgloss.NewStyle().Foreground(t.Subtle).Padding(0, 1).Render(label)
	}

	left := lipgloss.JoinHorizontal(lipgloss.Center, title, tab(PaneTasks, "1"), tab(PaneProjects, "2"))
	right := styles.Subtitle.Render("Welcome, " + m.user)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m RootModel) renderModal(body string) string {
	modal := theme.Current.Styles.Modal.Render(body)
	return lipgloss.Place(m.width, m.height-4, lipgloss.Center, lipgloss.Center, modal)
}

func (m RootModel) renderTasks() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	if len(m.taskList) == 0 {
		return styles.Panel.Render(styles.Label.Render("No tasks yet. Press a to add one."))
	}

	var b strings.Builder
	b.WriteString(styles.Label.Render(fmt.Sprintf("  %-4s %-28s %-22s %-10s %s", "ID", "Name", "Project", "Due", "Status")))
	b.WriteString("\n")
	for i, task := range m.taskList {
		line := fmt.Sprintf("%-4d %-28s %-22s %-10s ",
			task.ID, clip(task.Name, 28), clip(task.Project, 22), task.DueDate)
		status := lipgloss.NewStyle().Foreground(t.StatusColor(task.Status)).Render(task.Status.Label())

		row := styles.Row
		switch {
		case i == m.cursor[PaneTasks]:
			row = styles.RowSelected
		case task.IsCompleted():
			row = styles.RowDone
		}
		b.WriteString(row.Render(line) + status)
		b.WriteString("\n")
	}
	return styles.PanelActive.Render(strings.TrimSuffix(b.String(), "\n"))
}

func (m RootModel) renderProjects() string {
	styles := theme.Current.Styles

	if len(m.projectList) == 0 {
		return styles.Panel.Render(styles.Label.Render("No projects yet. Press a to add one."))
	}

	var b strings.Builder
	b.WriteString(styles.Label.Render(fmt.Sprintf("  %-4s %-24s %-22s %-12s %s", "ID", "Name", "Members", "Phone", "Dates")))
	b.WriteString("\n")
	for i, p := range m.projectList {
		line := fmt.Sprintf("%-4d %-24s %-22s %-12s %s → %s",
			p.ID, clip(p.Name, 24), clip(p.Members, 22), p.Phone, p.StartDate, p.EndDate)
		row := styles.Row
		if i == m.cursor[PaneProjects] {
			row = styles.RowSelected
		}
		b.WriteString(row.Render(line))
		b.WriteString("\n")
	}

	if i := m.cursor[PaneProjects]; i < len(m.projectList) {
		b.WriteString("\n")
		b.WriteString(styles.Subtitle.Render(m.projectList[i].Description))
	}
	return styles.PanelActive.Render(strings.TrimSuffix(b.String(), "\n"))
}

func (m RootModel) renderFooter() string {
	styles := theme.Current.Styles

	var status string
	switch {
	case m.confirm != nil:
		status = styles.Confirm.Render(m.confirm.prompt + " (y/n)")
	case m.status != "" && m.failed:
		status = styles.StatusError.Render(m.status)
	case m.status != "":
		status = styles.StatusOK.Render(m.status)
	}

	var hints string
	switch {
	case m.screen == ScreenAuth:
		hints = m.help.View(formKeys{k: m.keys, auth: true})
	case m.form != nil:
		hints = m.help.View(formKeys{k: m.keys, choices: m.form.hasChoices()})
	default:
		hints = m.help.View(m.keys)
	}
	return status + "\n" + styles.Footer.Render(hints)
}

// clip shortens s to n cells
func clip(s string, n int) string {
	if lipgloss.Width(s) <= n {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > n {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
