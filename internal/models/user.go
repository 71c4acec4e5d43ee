package models

// User is the client's view of the authenticated account. It is
// replaced wholesale on every auth transition and cleared on logout.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Verified bool   `json:"verified"`
}
