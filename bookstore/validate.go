package bookstore

import "strings"

// IsValidDate accepts a sale date iff it is exactly 10 characters long
// and contains exactly two dashes. It does not check that the
// characters are digits or that the fields are in calendar range.
func IsValidDate(s string) bool {
	return len(s) == 10 && strings.Count(s, "-") == 2
}
