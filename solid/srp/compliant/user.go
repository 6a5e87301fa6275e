// Package compliant splits the user profile into a plain record, a
// repository that owns persistence and a displayer that owns presentation.
package compliant

// User plain record; it knows nothing about storage or rendering.
type User struct {
	UserID int
	Name   string
	Email  string
}

func NewUser(userID int, name, email string) *User {
	return &User{UserID: userID, Name: name, Email: email}
}
