package models

// User is a registered account. IDs are store-assigned opaque strings.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"` // don't expose hash
}
