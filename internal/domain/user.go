package domain

// User mirrors the server's user shape. Money amounts stay decimal strings
// because the server computes spent and remaining.
type User struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      *string `json:"name"`
	Budget    *string `json:"budget"`
	Spent     string  `json:"spent"`
	Remaining *string `json:"remaining"`
}

func (u User) DisplayName() string {
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	return u.Email
}

func (u User) HasBudget() bool {
	return u.Budget != nil
}

type BudgetUpdate struct {
	Budget float64 `json:"budget"`
}

type NameUpdate struct {
	Name string `json:"name"`
}

type PasswordUpdate struct {
	CurrentPassword   string `json:"current_password"`
	NewPassword       string `json:"new_password"`
	ConfirmedPassword string `json:"confirmed_password"`
}
