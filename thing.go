package surrealhttp

import "strings"

// SplitThing splits a thing reference such as "person" or "person:tobie" into
// its table and optional record id, cutting on the first colon. No validation
// is performed; syntactically invalid references are passed through for the
// server to reject.
func SplitThing(thing string) (table, id string) {
	table, id, _ = strings.Cut(thing, ":")
	return table, id
}
