package domain

type Recipient struct {
	ID     string  `json:"id"`
	UserID string  `json:"user_id"`
	Name   string  `json:"name"`
	Notes  *string `json:"notes"`
}

func (r Recipient) Identifier() string { return r.ID }

type RecipientCreate struct {
	Name  string  `json:"name"`
	Notes *string `json:"notes,omitempty"`
}

type RecipientUpdate struct {
	Name  *string          `json:"name,omitempty"`
	Notes Nullable[string] `json:"notes,omitzero"`
}
