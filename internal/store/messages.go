package store

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

// Success messages shown after an operation
const (
	MsgRegistered     = "Account created. Please log in."
	MsgLoggedIn       = "Login successful."
	MsgTaskSaved      = "Task saved."
	MsgTaskCompleted  = "Task marked as completed."
	MsgTaskDeleted    = "Task deleted."
	MsgProjectSaved   = "Project saved."
	MsgProjectDeleted = "Project deleted."
	MsgCancelled      = "Cancelled."
)

// Message turns an operation error into text for direct display
func Message(err error) string {
	if err == nil {
		return ""
	}

	var verr *ValidationError
	switch {
	case errors.As(err, &verr),
		errors.Is(err, ErrPasswordMismatch),
		errors.Is(err, ErrDuplicateUsername),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrNotFound):
		return capitalize(err.Error())
	default:
		return "Could not save changes: " + err.Error()
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
