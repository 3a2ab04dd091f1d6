package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/gestor/internal/model"
	"github.com/dori/gestor/internal/notify"
	"github.com/dori/gestor/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStorage map[string]string

func (s memStorage) GetItem(key string) (string, bool, error) {
	v, ok := s[key]
	return v, ok, nil
}

func (s memStorage) SetItem(key, value string) error {
	s[key] = value
	return nil
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	right = tea.KeyMsg{Type: tea.KeyRight}
	ctrlR = tea.KeyMsg{Type: tea.KeyCtrlR}
	ctrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) (RootModel, Deps) {
	t.Helper()

	storage := memStorage{}
	changes := store.NewChanges()
	opt := store.WithChanges(changes)

	d := Deps{
		Accounts: store.NewAccountStore(store.NewAccountBinding(storage, opt), opt),
		Tasks:    store.NewTaskStore(store.NewTaskBinding(storage, opt), opt),
		Projects: store.NewProjectStore(store.NewProjectBinding(storage, opt), opt),
		Changes:  changes,
		Notifier: notify.NewNotifier(false),
	}
	require.NoError(t, d.Accounts.Load())
	require.NoError(t, d.Tasks.Load())
	require.NoError(t, d.Projects.Load())

	m := New(d)
	m = send(m, tea.WindowSizeMsg{Width: 140, Height: 40})
	return m, d
}

func send(m RootModel, msgs ...tea.Msg) RootModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(RootModel)
	}
	return m
}

// typeText sends s one key at a time, the way a terminal delivers it
func typeText(m RootModel, s string) RootModel {
	for _, r := range s {
		m = send(m, runes(string(r)))
	}
	return m
}

func loggedIn(t *testing.T) (RootModel, Deps) {
	t.Helper()

	m, d := newTestModel(t)
	_, err := d.Accounts.Register(model.Registration{
		Username:        "ana",
		Password:        "secret",
		ConfirmPassword: "secret",
		DisplayName:     "Ana",
		Email:           "ana@example.com",
	})
	require.NoError(t, err)

	m = typeText(m, "ana")
	m = send(m, tab)
	m = typeText(m, "secret")
	m = send(m, enter)
	require.Equal(t, ScreenBoard, m.Screen())
	return m, d
}

func TestRegisterThenLogin(t *testing.T) {
	m, d := newTestModel(t)

	m = send(m, ctrlR)
	assert.True(t, d.Accounts.Form().Registering)

	m = typeText(m, "ana")
	m = send(m, tab)
	m = typeText(m, "secret")
	m = send(m, tab)
	m = typeText(m, "secret")
	m = send(m, tab)
	m = typeText(m, "Ana")
	m = send(m, tab)
	m = typeText(m, "ana@example.com")
	m = send(m, enter)

	status, failed := m.Status()
	assert.Equal(t, store.MsgRegistered, status)
	assert.False(t, failed)
	assert.Equal(t, ScreenAuth, m.Screen())
	assert.False(t, d.Accounts.Form().Registering)
	require.Len(t, d.Accounts.Accounts(), 1)

	m = typeText(m, "ana")
	m = send(m, tab)
	m = typeText(m, "secret")
	m = send(m, enter)

	status, _ = m.Status()
	assert.Equal(t, store.MsgLoggedIn, status)
	assert.Equal(t, ScreenBoard, m.Screen())
	assert.Equal(t, "Ana", m.User())
}

func TestRegisterPasswordMismatch(t *testing.T) {
	m, d := newTestModel(t)

	m = send(m, ctrlR)
	m = typeText(m, "ana")
	m = send(m, tab)
	m = typeText(m, "secret")
	m = send(m, tab)
	m = typeText(m, "other")
	m = send(m, tab)
	m = typeText(m, "Ana")
	m = send(m, tab)
	m = typeText(m, "ana@example.com")
	m = send(m, enter)

	status, failed := m.Status()
	assert.True(t, failed)
	assert.Equal(t, "Passwords do not match", status)
	assert.Empty(t, d.Accounts.Accounts())
	assert.True(t, d.Accounts.Form().Registering)
}

func TestLoginRejected(t *testing.T) {
	m, _ := newTestModel(t)

	m = typeText(m, "nobody")
	m = send(m, tab)
	m = typeText(m, "x")
	m = send(m, enter)

	status, failed := m.Status()
	assert.True(t, failed)
	assert.Equal(t, "Incorrect username or password", status)
	assert.Equal(t, ScreenAuth, m.Screen())
	assert.Empty(t, m.User())
}

func TestQuitKeyTypesOnLoginScreen(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(m, runes("q"))

	assert.Equal(t, ScreenAuth, m.Screen())
	assert.Equal(t, "q", registration(m.auth).Username)
}

func TestAddTask(t *testing.T) {
	m, d := loggedIn(t)

	m = send(m, runes("a"))
	require.NotNil(t, m.form)
	assert.Equal(t, store.FormNew, d.Tasks.Form().Mode())

	m = typeText(m, "Write docs")
	m = send(m, tab)
	m = typeText(m, "Gestor")
	m = send(m, tab)
	m = typeText(m, "2025-07-01")
	m = send(m, tab, right, enter)

	status, failed := m.Status()
	assert.False(t, failed)
	assert.Equal(t, store.MsgTaskSaved, status)
	assert.Nil(t, m.form)

	tasks := d.Tasks.Tasks()
	require.Len(t, tasks, 4)
	assert.Equal(t, model.Task{
		ID: 4, Name: "Write docs", Project: "Gestor", DueDate: "2025-07-01", Status: model.StatusInProgress,
	}, tasks[3])

	// the new row is selected
	assert.Equal(t, 3, m.cursor[PaneTasks])
	assert.Len(t, m.taskList, 4)
}

func TestAddTaskRejectedKeepsForm(t *testing.T) {
	m, d := loggedIn(t)

	m = send(m, runes("a"))
	m = typeText(m, "Only a name")
	m = send(m, enter)

	status, failed := m.Status()
	assert.True(t, failed)
	assert.Contains(t, status, "Please complete all fields")
	require.NotNil(t, m.form)
	assert.Equal(t, "Only a name", taskDraft(*m.form).Name)
	assert.Len(t, d.Tasks.Tasks(), 3)

	m = send(m, esc)
	assert.Nil(t, m.form)
	assert.False(t, d.Tasks.Form().IsOpen())
	status, _ = m.Status()
	assert.Equal(t, store.MsgCancelled, status)
}

func TestEditTask(t *testing.T) {
	m, d := loggedIn(t)

	m = send(m, runes("e"))
	require.NotNil(t, m.form)
	assert.Equal(t, store.FormEdit, d.Tasks.Form().Mode())
	assert.Equal(t, 1, d.Tasks.Form().EditingID())
	assert.Equal(t, "Design interface", taskDraft(*m.form).Name)

	m = typeText(m, " v2")
	m = send(m, tab, tab, tab, right, enter)

	task, ok := d.Tasks.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Design interface v2", task.Name)
	assert.Equal(t, model.StatusInProgress, task.Status)
	assert.Len(t, d.Tasks.Tasks(), 3)
	assert.Equal(t, "Design interface v2", m.taskList[0].Name)
}

func TestCompleteTask(t *testing.T) {
	m, d := loggedIn(t)

	m = send(m, runes("j"), runes("c"))

	task, _ := d.Tasks.Get(2)
	assert.Equal(t, model.StatusCompleted, task.Status)
	status, _ := m.Status()
	assert.Equal(t, store.MsgTaskCompleted, status)
	assert.True(t, m.taskList[1].IsCompleted())

	m = send(m, runes("c"))
	status, _ = m.Status()
	assert.Equal(t, "Task is already completed.", status)
}

func TestDeleteTaskAsksFirst(t *testing.T) {
	m, d := loggedIn(t)

	m = send(m, runes("d"))
	require.NotNil(t, m.confirm)
	assert.Equal(t, store.DeleteTaskPrompt, m.confirm.prompt)

	// other keys leave the prompt up
	m = send(m, runes("a"))
	require.NotNil(t, m.confirm)
	assert.Nil(t, m.form)

	m = send(m, runes("n"))
	assert.Nil(t, m.confirm)
	assert.Len(t, d.Tasks.Tasks(), 3)
	status, _ := m.Status()
	assert.Equal(t, store.MsgCancelled, status)

	m = send(m, runes("d"), runes("y"))
	assert.Len(t, d.Tasks.Tasks(), 2)
	_, ok := d.Tasks.Get(1)
	assert.False(t, ok)
	status, _ = m.Status()
	assert.Equal(t, store.MsgTaskDeleted, status)
	assert.Len(t, m.taskList, 2)
}

func TestProjectsPane(t *testing.T) {
	m, d := loggedIn(t)

	m = send(m, runes("2"))
	assert.Equal(t, PaneProjects, m.pane)

	m = send(m, runes("a"))
	for i, v := range []string{"Audit", "Luis, Eva", "0977777777", "2025-08-01", "2025-09-01", "Yearly audit."} {
		if i > 0 {
			m = send(m, tab)
		}
		m = typeText(m, v)
	}
	m = send(m, enter)

	status, failed := m.Status()
	require.False(t, failed, status)
	projects := d.Projects.Projects()
	require.Len(t, projects, 3)
	assert.Equal(t, "Audit", projects[2].Name)
	assert.Equal(t, 3, projects[2].ID)

	m = send(m, runes("d"))
	require.NotNil(t, m.confirm)
	assert.Equal(t, store.DeleteProjectPrompt, m.confirm.prompt)
	m = send(m, runes("y"))
	assert.Len(t, d.Projects.Projects(), 2)

	// complete only applies to tasks
	m = send(m, runes("c"))
	assert.Len(t, d.Projects.Projects(), 2)

	m = send(m, tab)
	assert.Equal(t, PaneTasks, m.pane)
}

func TestExternalChangeRefreshesList(t *testing.T) {
	m, d := loggedIn(t)

	_, err := d.Tasks.Create(model.TaskDraft{Name: "Elsewhere", Project: "CLI", DueDate: "2025-07-01"})
	require.NoError(t, err)
	assert.Len(t, m.taskList, 3)

	m = send(m, tea.WindowSizeMsg{Width: 140, Height: 40})
	assert.Len(t, m.taskList, 4)
}

func TestLogout(t *testing.T) {
	m, _ := loggedIn(t)

	m = send(m, runes("L"))
	assert.Equal(t, ScreenAuth, m.Screen())
	assert.Empty(t, m.User())
}

func TestQuitUnsubscribes(t *testing.T) {
	m, d := loggedIn(t)
	assert.Equal(t, 1, d.Changes.Len())

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, 0, d.Changes.Len())
}

func TestCtrlCQuitsFromForm(t *testing.T) {
	m, _ := loggedIn(t)

	m = send(m, runes("a"))
	_, cmd := m.Update(ctrlC)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestView(t *testing.T) {
	m, _ := loggedIn(t)

	view := m.View()
	assert.Contains(t, view, "Welcome, Ana")
	assert.Contains(t, view, "Design interface")
	assert.Contains(t, view, "In progress")

	m = send(m, runes("2"))
	view = m.View()
	assert.Contains(t, view, "Website Redesign")
	assert.Contains(t, view, "Refresh of the web interface.")

	m = send(m, runes("d"))
	assert.Contains(t, m.View(), store.DeleteProjectPrompt)
}
