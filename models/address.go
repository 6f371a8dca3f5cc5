package models

// SavedAddress is an entry in the user's address book, offered as a
// pre-fill option on the Details step.
type SavedAddress struct {
	ID        string `json:"id"`
	UserID    string `json:"userId,omitempty"`
	Label     string `json:"label"`
	Address   string `json:"address"`
	IsDefault bool   `json:"isDefault,omitempty"`
}
