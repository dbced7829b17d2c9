// Package validate holds the input checks shared by the public and admin
// APIs.
package validate

import "regexp"

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email reports whether the address has a plausible mailbox@domain shape.
func Email(email string) bool {
	return emailPattern.MatchString(email)
}
