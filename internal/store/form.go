package store

// FormMode tells whether the add/edit modal is open and for what
type FormMode int

const (
	FormClosed FormMode = iota
	FormNew
	FormEdit
)

// Form is the staging area behind the add/edit modal. One draft buffer is
// shared by the new and edit flows.
type Form[D any] struct {
	mode      FormMode
	editingID int
	draft     D
	blank     func() D
}

func newForm[D any](blank func() D) Form[D] {
	return Form[D]{draft: blank(), blank: blank}
}

// Mode returns the current form mode
func (f *Form[D]) Mode() FormMode {
	return f.mode
}

// IsOpen returns true while the modal is shown
func (f *Form[D]) IsOpen() bool {
	return f.mode != FormClosed
}

// EditingID returns the id of the record being edited, or 0
func (f *Form[D]) EditingID() int {
	return f.editingID
}

// Draft returns the staged values
func (f *Form[D]) Draft() D {
	return f.draft
}

// Set replaces the staged values
func (f *Form[D]) Set(d D) {
	f.draft = d
}

func (f *Form[D]) openNew() {
	f.mode = FormNew
	f.editingID = 0
	f.draft = f.blank()
}

func (f *Form[D]) openEdit(id int, d D) {
	f.mode = FormEdit
	f.editingID = id
	f.draft = d
}

func (f *Form[D]) reset() {
	f.mode = FormClosed
	f.editingID = 0
	f.draft = f.blank()
}
