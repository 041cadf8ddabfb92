package record

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRows struct {
	names  []string
	values [][]any
	pos    int
	err    error
}

func (f *fakeRows) FieldDescriptions() []pgconn.FieldDescription {
	descs := make([]pgconn.FieldDescription, len(f.names))
	for i, n := range f.names {
		descs[i] = pgconn.FieldDescription{Name: n}
	}
	return descs
}

func (f *fakeRows) Next() bool {
	return f.pos < len(f.values)
}

func (f *fakeRows) Values() ([]any, error) {
	v := f.values[f.pos]
	f.pos++
	return v, nil
}

func (f *fakeRows) Err() error { return f.err }

func TestFromRowsPreservesProjectionOrder(t *testing.T) {
	rows := &fakeRows{
		names: []string{"netID", "firstName", "lastName"},
		values: [][]any{
			{"jdoe", "Jane", "Doe"},
			{"bsmith", "Bob", "Smith"},
		},
	}

	records, err := FromRows(rows)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "netID", records[0][0].Name)
	assert.Equal(t, "firstName", records[0][1].Name)
	assert.Equal(t, "lastName", records[0][2].Name)

	v, ok := records[1].Get("firstName")
	require.True(t, ok)
	assert.Equal(t, "Bob", v)
}

func TestFromRowsEmptyResultIsNotNil(t *testing.T) {
	records, err := FromRows(&fakeRows{names: []string{"showID"}})
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestFromRowsPropagatesRowError(t *testing.T) {
	rows := &fakeRows{names: []string{"showID"}, err: errors.New("broken pipe")}

	_, err := FromRows(rows)
	require.Error(t, err)
}

func TestGetMissingField(t *testing.T) {
	rec := Record{{Name: "netID", Value: "jdoe"}}

	_, ok := rec.Get("email")
	assert.False(t, ok)
}

func TestMarshalJSONKeepsOrderAndTypes(t *testing.T) {
	rec := Record{
		{Name: "showID", Value: int64(3)},
		{Name: "showName", Value: "Our Town"},
		{Name: "wigTrained", Value: true},
		{Name: "song", Value: nil},
	}

	data, err := rec.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"showID":3,"showName":"Our Town","wigTrained":true,"song":null}`, string(data))
}
