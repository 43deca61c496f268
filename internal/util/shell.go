// Package util provides small string helpers shared across learngit.
package util

import "strings"

// ShellQuote wraps a string in single quotes, escaping any existing single quotes,
// so a shell treats it as one literal word.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// ShellJoin quotes every argument and joins them with spaces.
func ShellJoin(args ...string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = ShellQuote(a)
	}
	return strings.Join(quoted, " ")
}
