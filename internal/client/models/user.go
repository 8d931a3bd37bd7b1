// Package models defines the record types persisted by the task vault and
// the pure functions operating on them.
package models

// User is one credential record in the `users` collection. Email acts as
// the identifier; uniqueness is enforced by the registration-time scan,
// not by storage. Records are never updated or deleted.
//
// The json tags match the persisted layout: the digest historically lived
// under the "password" key.
type User struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
	Salt         string `json:"salt,omitempty"`
}

// Session is the currently authenticated user. The zero value means
// logged out.
type Session struct {
	Email string
	Name  string
}

// Active reports whether a user is logged in.
func (s Session) Active() bool {
	return s.Email != ""
}
