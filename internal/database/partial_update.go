package database

import (
	"strconv"
	"strings"
)

// Change is a single field assignment of a partial update.
type Change struct {
	Field string
	Value any
}

// PartialUpdate is the column assignment list of an UPDATE statement and
// the values bound to its positional parameters.
type PartialUpdate struct {
	Assignments []string
	Values      []any
}

// SetClause joins the assignments for use after SET.
func (p *PartialUpdate) SetClause() string {
	return strings.Join(p.Assignments, ", ")
}

// NextPlaceholder returns the positional parameter following the last value,
// for callers that append a WHERE argument.
func (p *PartialUpdate) NextPlaceholder() string {
	return "$" + strconv.Itoa(len(p.Values)+1)
}

// SQLForPartialUpdate builds `"column"=$n` assignments for every change, in
// input order. columns maps a field name to its column name; fields missing
// from it are used as given. An empty change list returns ErrEmptyUpdate.
//
//	SQLForPartialUpdate([]Change{{"name", "X"}, {"numEmployees", 5}},
//	    map[string]string{"numEmployees": "num_employees"})
//	// Assignments: `"name"=$1`, `"num_employees"=$2`
//	// Values:      "X", 5
func SQLForPartialUpdate(changes []Change, columns map[string]string) (*PartialUpdate, error) {
	if len(changes) == 0 {
		return nil, ErrEmptyUpdate
	}

	pu := &PartialUpdate{
		Assignments: make([]string, 0, len(changes)),
		Values:      make([]any, 0, len(changes)),
	}
	for i, c := range changes {
		pu.Assignments = append(pu.Assignments, quoteIdent(columnFor(c.Field, columns))+"=$"+strconv.Itoa(i+1))
		pu.Values = append(pu.Values, c.Value)
	}
	return pu, nil
}

func columnFor(field string, columns map[string]string) string {
	if col, ok := columns[field]; ok {
		return col
	}
	return field
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
