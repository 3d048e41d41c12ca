package queryservice

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyQuery    = errors.New("empty query")
	ErrInvalidQuery  = errors.New("invalid query format")
	ErrTableMismatch = errors.New("table name mismatch")
	ErrUnknownColumn = errors.New("unknown column")
	ErrInvalidFilter = errors.New("invalid filter")
)

const (
	msgEmptyQuery   = "Query cannot be empty."
	msgInvalidQuery = "Invalid query format. Expected: SELECT * FROM table WHERE column = 'value';"
)

// QueryError carries the message shown to the user while still matching one
// of the sentinel errors above through errors.Is.
type QueryError struct {
	kind error
	msg  string
}

func (e *QueryError) Error() string { return e.msg }

func (e *QueryError) Unwrap() error { return e.kind }

func newQueryError(kind error, msg string) *QueryError {
	return &QueryError{kind: kind, msg: msg}
}

func tableMismatch(queryTable, selected string) *QueryError {
	return newQueryError(ErrTableMismatch, fmt.Sprintf(
		"Table name in query (%s) does not match selected table (%s).", queryTable, selected))
}
