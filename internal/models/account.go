package models

// Account is a user known to the stand-in login application
type Account struct {
	Username string
	Password string
	Locked   bool
}

// DefaultPassword is shared by every seeded account
const DefaultPassword = "secret_sauce"

// DefaultAccounts returns the accounts the login screen accepts
func DefaultAccounts() []Account {
	return []Account{
		{Username: "standard_user", Password: DefaultPassword},
		{Username: "locked_out_user", Password: DefaultPassword, Locked: true},
		{Username: "problem_user", Password: DefaultPassword},
		{Username: "performance_glitch_user", Password: DefaultPassword},
		{Username: "error_user", Password: DefaultPassword},
		{Username: "visual_user", Password: DefaultPassword},
	}
}
