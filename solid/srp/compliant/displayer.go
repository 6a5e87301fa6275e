package compliant

import (
	"fmt"
	"io"
)

type UserDisplayer struct {
	out io.Writer
}

func NewUserDisplayer(out io.Writer) *UserDisplayer {
	return &UserDisplayer{out: out}
}

// Display prints "User not found." for a nil user instead of failing.
func (d *UserDisplayer) Display(user *User) {
	if user == nil {
		fmt.Fprintln(d.out, "User not found.")
		return
	}
	fmt.Fprintln(d.out, "--- User Profile ---")
	fmt.Fprintf(d.out, "ID: %d\n", user.UserID)
	fmt.Fprintf(d.out, "Name: %s\n", user.Name)
	fmt.Fprintf(d.out, "Email: %s\n", user.Email)
}
