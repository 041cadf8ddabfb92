// Package queryfilter builds the single-predicate filter queries used by the
// filterBy endpoints. Column names arrive from the client and can never be
// bound as SQL parameters, so every name is resolved against a fixed
// whitelist before it is placed into query text.
package queryfilter

import "fmt"

// Whitelist maps a table alias to the set of request column names permitted
// for that alias, and each name to the qualified SQL fragment that replaces
// it. Matching is exact and case-sensitive.
type Whitelist map[string]map[string]string

// NewWhitelist builds a whitelist from alias -> column names. The generated
// SQL fragment qualifies and quotes the column, e.g. s."netID", so camelCase
// identifiers survive PostgreSQL's case folding.
func NewWhitelist(columns map[string][]string) Whitelist {
	w := make(Whitelist, len(columns))
	for alias, names := range columns {
		entry := make(map[string]string, len(names))
		for _, name := range names {
			entry[name] = fmt.Sprintf(`%s.%q`, alias, name)
		}
		w[alias] = entry
	}
	return w
}

// WithTextCast rewrites the fragment for a numeric column so it can be
// compared with LIKE. No-op when the alias/column is not whitelisted.
func (w Whitelist) WithTextCast(alias, column string) Whitelist {
	if entry, ok := w[alias]; ok {
		if fragment, ok := entry[column]; ok {
			entry[column] = fragment + "::text"
		}
	}
	return w
}

// Resolve returns the SQL fragment for the given alias and column. The
// second return value is false when the combination is not whitelisted;
// callers must reject the request without touching the database.
func (w Whitelist) Resolve(alias, column string) (string, bool) {
	entry, ok := w[alias]
	if !ok {
		return "", false
	}
	fragment, ok := entry[column]
	if !ok {
		return "", false
	}
	return fragment, true
}

// Allows reports whether the alias/column pair is whitelisted.
func (w Whitelist) Allows(alias, column string) bool {
	_, ok := w.Resolve(alias, column)
	return ok
}
