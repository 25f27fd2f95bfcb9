package domain

import "time"

// RoleUser is the single authority granted to every authenticated account.
const RoleUser = "USUARIO"

// User models a registered account. Email is the business key used for login;
// the password hash never leaves the backend.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"nome"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}

// PublicView is the outward representation of a user, safe to serialize.
type PublicView struct {
	ID    string `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
}

// Public returns the outward view of the user.
func (u *User) Public() PublicView {
	return PublicView{ID: u.ID, Name: u.Name, Email: u.Email}
}
