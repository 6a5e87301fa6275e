// Package violation keeps fetching, presenting and persisting a user in one
// type; any of the three concerns changing forces UserProfile to change.
package violation

import (
	"fmt"
	"io"

	"solid-example/pkg/logger"

	"go.uber.org/zap"
)

// UserDetails what GetUserDetails hands back
type UserDetails struct {
	ID    int
	Name  string
	Email string
}

type UserProfile struct {
	UserID int
	Name   string
	Email  string

	out io.Writer
}

func NewUserProfile(out io.Writer, userID int, name, email string) *UserProfile {
	return &UserProfile{UserID: userID, Name: name, Email: email, out: out}
}

// GetUserDetails stands in for a database lookup.
func (p *UserProfile) GetUserDetails() UserDetails {
	fmt.Fprintf(p.out, "Fetching details for %d from database...\n", p.UserID)
	return UserDetails{ID: p.UserID, Name: p.Name, Email: p.Email}
}

// DisplayUser fetches before rendering, so presentation drags persistence along.
func (p *UserProfile) DisplayUser() {
	details := p.GetUserDetails()
	fmt.Fprintln(p.out, "--- User Profile ---")
	fmt.Fprintf(p.out, "ID: %d\n", details.ID)
	fmt.Fprintf(p.out, "Name: %s\n", details.Name)
	fmt.Fprintf(p.out, "Email: %s\n", details.Email)
}

func (p *UserProfile) SaveUserToDatabase() {
	fmt.Fprintf(p.out, "Saving user %s to database...\n", p.Name)
	fmt.Fprintln(p.out, "User saved.")
	logger.Debug("user profile saved", zap.Int("user_id", p.UserID))
}
