package models

// Todo is a single todo item owned by exactly one user.
type Todo struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Done   bool   `json:"done"`
	UserID string `json:"userId"` // owner; copied from the authenticated caller
}
