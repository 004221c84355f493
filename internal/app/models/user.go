package models

import "time"

// User defines the identity model based on the 'users' table. Usernames are
// the unique key across all services; peer services refer to users by
// username only and never hold a live reference.
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Username  string    `json:"username" db:"username" example:"jdoe"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Roles     []string  `json:"roles" db:"roles" example:"student,ta"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// HasRole reports whether the user carries the given role tag
// (case-insensitive, like the authority mapping).
func (u *User) HasRole(role string) bool {
	want, ok := AuthorityForRole(role)
	if !ok {
		return false
	}
	for _, r := range u.Roles {
		if got, ok := AuthorityForRole(r); ok && got == want {
			return true
		}
	}
	return false
}
