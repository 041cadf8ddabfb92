// Package record maps arbitrary SQL result sets to ordered field/value
// records. The read endpoints return whatever projection their query
// selects, so rows are kept duck-typed instead of being scanned into
// per-entity structs.
package record

import (
	"bytes"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgconn"
)

// Field is one column of a result row.
type Field struct {
	Name  string
	Value any
}

// Record is a single result row with its projection order preserved.
type Record []Field

// Rows is the subset of pgx.Rows needed to build records.
type Rows interface {
	FieldDescriptions() []pgconn.FieldDescription
	Values() ([]any, error)
	Next() bool
	Err() error
}

// FromRows drains a result set into records. The caller remains responsible
// for closing the rows.
func FromRows(rows Rows) ([]Record, error) {
	descs := rows.FieldDescriptions()
	names := make([]string, len(descs))
	for i, d := range descs {
		names[i] = string(d.Name)
	}

	records := []Record{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		rec := make(Record, len(values))
		for i, v := range values {
			rec[i] = Field{Name: names[i], Value: v}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Get returns the value for the named field.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// MarshalJSON renders the record as a JSON object in projection order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
