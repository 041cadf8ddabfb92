package queryfilter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveQualifiesAndQuotes(t *testing.T) {
	w := NewWhitelist(map[string][]string{
		"s": {"netID", "firstName"},
	})

	fragment, ok := w.Resolve("s", "netID")
	require.True(t, ok)
	assert.Equal(t, `s."netID"`, fragment)
}

func TestResolveRejectsUnknownColumn(t *testing.T) {
	w := NewWhitelist(map[string][]string{
		"s": {"netID", "firstName", "lastName"},
	})

	cases := []struct {
		alias  string
		column string
	}{
		{"s", "password"},
		{"s", "netid"},               // case-sensitive
		{"s", "netID; DROP TABLE s"}, // injection attempt
		{"s", ""},
		{"x", "netID"}, // unknown alias
		{"", "netID"},
	}
	for _, tc := range cases {
		_, ok := w.Resolve(tc.alias, tc.column)
		assert.False(t, ok, "alias=%q column=%q", tc.alias, tc.column)
	}
}

func TestAllowsMatchesResolve(t *testing.T) {
	w := NewWhitelist(map[string][]string{
		"sh": {"showID", "showName", "yearSemester"},
	})

	assert.True(t, w.Allows("sh", "yearSemester"))
	assert.False(t, w.Allows("sh", "director"))
}

func TestWithTextCast(t *testing.T) {
	w := NewWhitelist(map[string][]string{
		"c": {"showID", "characterName"},
	}).WithTextCast("c", "showID")

	fragment, ok := w.Resolve("c", "showID")
	require.True(t, ok)
	assert.Equal(t, `c."showID"::text`, fragment)

	fragment, ok = w.Resolve("c", "characterName")
	require.True(t, ok)
	assert.Equal(t, `c."characterName"`, fragment)

	// unknown targets are ignored
	w.WithTextCast("c", "nope")
	w.WithTextCast("zz", "showID")
}

func TestBuildPartialWrapsWildcards(t *testing.T) {
	q := Query{
		Base:    "SELECT * FROM student s",
		OrderBy: `ORDER BY s."lastName", s."firstName"`,
	}

	sql, args, err := Build(q, `s."lastName"`, MatchPartial, "Doe")
	require.NoError(t, err)
	assert.Contains(t, sql, `WHERE s."lastName" LIKE $1`)
	assert.True(t, strings.HasSuffix(sql, `ORDER BY s."lastName", s."firstName"`))
	assert.Equal(t, []any{"%Doe%"}, args)
}

func TestBuildExactParsesNumericValue(t *testing.T) {
	q := Query{Base: "SELECT * FROM shows sh"}

	sql, args, err := Build(q, `sh."showID"`, MatchExact, " 42 ")
	require.NoError(t, err)
	assert.Contains(t, sql, `WHERE sh."showID" = $1`)
	assert.Equal(t, []any{int64(42)}, args)
}

func TestBuildExactRejectsNonNumericValue(t *testing.T) {
	q := Query{Base: "SELECT * FROM shows sh"}

	_, _, err := Build(q, `sh."showID"`, MatchExact, "forty-two")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotNumeric)
}

func TestBuildNeverInterpolatesValue(t *testing.T) {
	q := Query{Base: "SELECT * FROM student s"}
	hostile := `' OR '1'='1`

	sql, args, err := Build(q, `s."netID"`, MatchPartial, hostile)
	require.NoError(t, err)
	assert.NotContains(t, sql, hostile)
	assert.Equal(t, []any{"%" + hostile + "%"}, args)
}
