package store

import (
	"slices"

	"github.com/dori/gestor/internal/model"
	"go.uber.org/zap"
)

// AccountsKey is the storage key of the account collection
const AccountsKey = "usuarios"

// NewAccountBinding binds the account collection to storage. There are no
// sample accounts.
func NewAccountBinding(storage Storage, opts ...Option) *Binding[model.Account] {
	return NewBinding[model.Account](storage, AccountsKey, nil, opts...)
}

// AccountStore owns the registered accounts and the login/register form.
// Credentials are kept and compared as plain text.
type AccountStore struct {
	collection[model.Account]
	form AuthForm
}

// AuthForm is the staged login or registration input
type AuthForm struct {
	Registering bool
	Fields      model.Registration
}

// NewAccountStore creates a store over p. Call Load before registering.
func NewAccountStore(p Persister[model.Account], opts ...Option) *AccountStore {
	return &AccountStore{
		collection: newCollection(p, buildOptions(opts)),
	}
}

// Load reads the persisted accounts
func (s *AccountStore) Load() error {
	return s.load()
}

// Accounts returns a copy of all accounts in registration order
func (s *AccountStore) Accounts() []model.Account {
	return s.all()
}

// Exists reports whether username is taken (exact, case-sensitive match)
func (s *AccountStore) Exists(username string) bool {
	return slices.ContainsFunc(s.items, func(a model.Account) bool {
		return a.Username == username
	})
}

// Register validates the sign-up fields and appends a new account. Checks run
// in order: empty fields, password confirmation, username uniqueness.
func (s *AccountStore) Register(r model.Registration) (model.Account, error) {
	if !s.loaded {
		return model.Account{}, ErrNotLoaded
	}
	if err := checkDraft(r); err != nil {
		return model.Account{}, err
	}
	if r.Password != r.ConfirmPassword {
		return model.Account{}, ErrPasswordMismatch
	}
	if s.Exists(r.Username) {
		return model.Account{}, ErrDuplicateUsername
	}

	account := model.Account{
		Username:    r.Username,
		Password:    r.Password,
		DisplayName: r.DisplayName,
		Email:       r.Email,
	}

	next := append(s.all(), account)
	if err := s.commit(next, OpRegistered, account.Username); err != nil {
		return model.Account{}, err
	}
	return account, nil
}

// Login looks for an exact username and password match and returns the name
// to greet the user with. It never mutates state.
func (s *AccountStore) Login(username, password string) (string, error) {
	for _, a := range s.items {
		if a.Username == username && a.Password == password {
			s.log.Info("login succeeded", zap.String("username", username))
			return a.Greeting(), nil
		}
	}
	s.log.Info("login failed", zap.String("username", username))
	return "", ErrInvalidCredentials
}

// Form exposes the staged login/register input
func (s *AccountStore) Form() *AuthForm {
	return &s.form
}

// ToggleMode switches between login and registration and clears the fields
func (s *AccountStore) ToggleMode() {
	s.form.Registering = !s.form.Registering
	s.form.Fields = model.Registration{}
}

// SubmitForm runs Register or Login with the staged fields. A successful
// registration switches the form to login mode; any success clears the
// fields. The returned name is only set after a successful login.
func (s *AccountStore) SubmitForm() (string, error) {
	f := s.form.Fields
	if s.form.Registering {
		if _, err := s.Register(f); err != nil {
			return "", err
		}
		s.form = AuthForm{}
		return "", nil
	}

	name, err := s.Login(f.Username, f.Password)
	if err != nil {
		return "", err
	}
	s.form.Fields = model.Registration{}
	return name, nil
}
