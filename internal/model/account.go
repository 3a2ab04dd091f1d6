package model

// Account is a registered user. Passwords are stored as entered.
type Account struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

// Greeting returns the name shown after login
func (a *Account) Greeting() string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	return a.Username
}

// Registration holds the fields of the sign-up form
type Registration struct {
	Username        string `json:"username" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	DisplayName     string `json:"displayName" validate:"required"`
	Email           string `json:"email" validate:"required"`
}

// Credentials holds the fields of the login form
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
