package operation

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Status is a resource status reported by an add-on api
type Status string

func (s Status) String() string { return string(s) }

// StatusSet is a set of statuses
type StatusSet map[Status]struct{}

// NewStatusSet creates a new status set
func NewStatusSet(statuses ...Status) StatusSet {
	set := make(StatusSet, len(statuses))
	for _, status := range statuses {
		set[status] = struct{}{}
	}
	return set
}

// Contains reports whether the status is a member of the set
func (set StatusSet) Contains(status Status) bool {
	_, ok := set[status]
	return ok
}

// Humanize converts a status into its display form
// e.g. "connection_failed" becomes "Connection Failed"
func Humanize(status Status) string {
	words := strings.FieldsFunc(string(status), func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	caser := cases.Title(language.English)
	for i, word := range words {
		words[i] = caser.String(word)
	}
	return strings.Join(words, " ")
}
