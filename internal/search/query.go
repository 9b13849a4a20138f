package search

import "errors"

// ErrEmptyQuery is returned by Query.Validate when there is nothing to search for.
var ErrEmptyQuery = errors.New("search: empty query")

// Query describes one find or replace request.
type Query struct {
	Value       string
	ReplaceWith *string // nil means find only
	MatchWord   bool
	MatchCase   bool
	ReplaceAll  bool // only meaningful when ReplaceWith is set
}

// Find returns a find-only query for value.
func Find(value string) Query {
	return Query{Value: value}
}

// WithReplacement returns a copy of q that replaces matches with r.
func (q Query) WithReplacement(r string) Query {
	q.ReplaceWith = &r
	return q
}

// FindOnly returns a copy of q with the replacement dropped.
func (q Query) FindOnly() Query {
	q.ReplaceWith = nil
	q.ReplaceAll = false
	return q
}

func (q Query) IsReplace() bool {
	return q.ReplaceWith != nil
}

// Validate reports whether the query can be run. Callers are expected to
// reject an empty value before invoking the engine.
func (q Query) Validate() error {
	if q.Value == "" {
		return ErrEmptyQuery
	}
	return nil
}
