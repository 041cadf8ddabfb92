package queryfilter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotNumeric is returned when an exact-match filter receives a value that
// does not parse as an integer identifier.
var ErrNotNumeric = errors.New("filter value must be numeric")

// MatchMode selects how the filter value is compared.
type MatchMode int

const (
	// MatchPartial wraps the value in wildcards and compares with LIKE.
	MatchPartial MatchMode = iota
	// MatchExact parses the value as an integer and compares with equality.
	MatchExact
)

// Query is the fixed part of a filter statement: projection with joins, and
// an optional ORDER BY tail. The WHERE clause is inserted between them.
type Query struct {
	Base    string
	OrderBy string
}

// Build assembles the final SQL text and bound arguments. The fragment must
// come from Whitelist.Resolve; it is the only dynamic text in the statement.
// All values travel as bound parameters.
func Build(q Query, fragment string, mode MatchMode, value string) (string, []any, error) {
	var predicate string
	var args []any

	switch mode {
	case MatchExact:
		id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %q", ErrNotNumeric, value)
		}
		predicate = fragment + " = $1"
		args = []any{id}
	default:
		predicate = fragment + " LIKE $1"
		args = []any{"%" + value + "%"}
	}

	var sb strings.Builder
	sb.WriteString(strings.TrimRight(q.Base, " \n\t"))
	sb.WriteString("\nWHERE ")
	sb.WriteString(predicate)
	if q.OrderBy != "" {
		sb.WriteString("\n")
		sb.WriteString(q.OrderBy)
	}
	return sb.String(), args, nil
}
