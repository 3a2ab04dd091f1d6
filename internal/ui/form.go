package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/gestor/internal/model"
	"github.com/dori/gestor/internal/ui/theme"
)

// field is one row of a fieldForm: either a text input or a fixed choice
type field struct {
	label    string
	input    textinput.Model
	choices  []string
	selected int
}

func (f field) isChoice() bool {
	return len(f.choices) > 0
}

func (f field) value() string {
	if f.isChoice() {
		return f.choices[f.selected]
	}
	return strings.TrimSpace(f.input.Value())
}

func textField(label, value, placeholder string) field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	ti.Width = 40
	ti.SetValue(value)
	return field{label: label, input: ti}
}

func secretField(label, value string) field {
	f := textField(label, value, "")
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '•'
	return f
}

func choiceField(label string, choices []string, current string) field {
	f := field{label: label, choices: choices}
	for i, c := range choices {
		if c == current {
			f.selected = i
		}
	}
	return f
}

// fieldForm renders a titled list of fields with one focused at a time
type fieldForm struct {
	title  string
	fields []field
	focus  int
	keys   KeyMap
}

func newFieldForm(title string, keys KeyMap, fields ...field) fieldForm {
	f := fieldForm{title: title, fields: fields, keys: keys}
	f.setFocus(0)
	return f
}

func (f *fieldForm) setFocus(i int) {
	n := len(f.fields)
	if n == 0 {
		return
	}
	f.focus = (i%n + n) % n
	for j := range f.fields {
		if f.fields[j].isChoice() {
			continue
		}
		if j == f.focus {
			f.fields[j].input.Focus()
		} else {
			f.fields[j].input.Blur()
		}
	}
}

func (f fieldForm) value(i int) string {
	if i < 0 || i >= len(f.fields) {
		return ""
	}
	return f.fields[i].value()
}

func (f fieldForm) hasChoices() bool {
	for _, fd := range f.fields {
		if fd.isChoice() {
			return true
		}
	}
	return false
}

// Update moves focus, cycles choices and forwards typing to the focused input.
// Submit and cancel are handled by the caller.
func (f fieldForm) Update(msg tea.Msg) (fieldForm, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch {
	case key.Matches(keyMsg, f.keys.NextField):
		f.setFocus(f.focus + 1)
		return f, textinput.Blink
	case key.Matches(keyMsg, f.keys.PrevField):
		f.setFocus(f.focus - 1)
		return f, textinput.Blink
	}

	if len(f.fields) == 0 {
		return f, nil
	}
	cur := &f.fields[f.focus]
	if cur.isChoice() {
		n := len(cur.choices)
		switch {
		case key.Matches(keyMsg, f.keys.NextChoice):
			cur.selected = (cur.selected + 1) % n
		case key.Matches(keyMsg, f.keys.PrevChoice):
			cur.selected = (cur.selected - 1 + n) % n
		}
		return f, nil
	}

	var cmd tea.Cmd
	cur.input, cmd = cur.input.Update(keyMsg)
	return f, cmd
}

// View renders the form
func (f fieldForm) View() string {
	styles := theme.Current.Styles
	var b strings.Builder

	b.WriteString(styles.Title.Render(f.title))
	b.WriteString("\n")

	for i, fd := range f.fields {
		label := styles.Label.Render(fd.label)
		var body string
		if fd.isChoice() {
			body = renderChoices(fd)
		} else {
			body = fd.input.View()
		}

		box := styles.Input
		if i == f.focus {
			box = styles.InputFocused
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(box.Render(body))
		b.WriteString("\n")
	}
	return b.String()
}

func renderChoices(fd field) string {
	t := theme.Current.Theme
	parts := make([]string, len(fd.choices))
	for i, c := range fd.choices {
		s := lipgloss.NewStyle().Foreground(t.Subtle)
		label := c
		if st := model.Status(c); st.Valid() {
			label = st.Label()
		}
		if i == fd.selected {
			s = lipgloss.NewStyle().Foreground(t.StatusColor(model.Status(c))).Bold(true)
			label = "[" + label + "]"
		}
		parts[i] = s.Render(label)
	}
	return strings.Join(parts, "  ")
}

// Task form

const (
	taskName = iota
	taskProject
	taskDue
	taskStatus
)

func taskForm(title string, keys KeyMap, d model.TaskDraft) fieldForm {
	statuses := make([]string, 0, 3)
	for _, s := range model.Statuses() {
		statuses = append(statuses, string(s))
	}
	return newFieldForm(title, keys,
		textField("Name", d.Name, "What needs doing"),
		textField("Project", d.Project, "Project label"),
		textField("Due date", d.DueDate, "YYYY-MM-DD"),
		choiceField("Status", statuses, string(d.Status)),
	)
}

func taskDraft(f fieldForm) model.TaskDraft {
	return model.TaskDraft{
		Name:    f.value(taskName),
		Project: f.value(taskProject),
		DueDate: f.value(taskDue),
		Status:  model.Status(f.value(taskStatus)),
	}
}

// Project form

const (
	projectName = iota
	projectMembers
	projectPhone
	projectStart
	projectEnd
	projectDescription
)

func projectForm(title string, keys KeyMap, d model.ProjectDraft) fieldForm {
	return newFieldForm(title, keys,
		textField("Name", d.Name, "Project name"),
		textField("Members", d.Members, "Comma separated"),
		textField("Phone", d.Phone, "Contact phone"),
		textField("Start date", d.StartDate, "YYYY-MM-DD"),
		textField("End date", d.EndDate, "YYYY-MM-DD"),
		textField("Description", d.Description, ""),
	)
}

func projectDraft(f fieldForm) model.ProjectDraft {
	return model.ProjectDraft{
		Name:        f.value(projectName),
		Members:     f.value(projectMembers),
		Phone:       f.value(projectPhone),
		StartDate:   f.value(projectStart),
		EndDate:     f.value(projectEnd),
		Description: f.value(projectDescription),
	}
}

// Auth form. Login shows the first two fields only.

const (
	authUsername = iota
	authPassword
	authConfirm
	authName
	authEmail
)

func authForm(keys KeyMap, registering bool, r model.Registration) fieldForm {
	if !registering {
		return newFieldForm("Log in", keys,
			textField("Username", r.Username, ""),
			secretField("Password", r.Password),
		)
	}
	return newFieldForm("Create account", keys,
		textField("Username", r.Username, ""),
		secretField("Password", r.Password),
		secretField("Confirm password", r.ConfirmPassword),
		textField("Display name", r.DisplayName, ""),
		textField("Email", r.Email, ""),
	)
}

// registration reads the auth fields. Passwords are taken untrimmed.
func registration(f fieldForm) model.Registration {
	raw := func(i int) string {
		if i >= len(f.fields) {
			return ""
		}
		return f.fields[i].input.Value()
	}
	return model.Registration{
		Username:        f.value(authUsername),
		Password:        raw(authPassword),
		ConfirmPassword: raw(authConfirm),
		DisplayName:     f.value(authName),
		Email:           f.value(authEmail),
	}
}
