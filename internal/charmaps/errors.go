package charmaps

import "errors"

var (
	// ErrInvalidTable is returned for a table that fails to parse or validate.
	ErrInvalidTable = errors.New("charmaps: invalid table")
	// ErrDuplicateTable is returned when two files declare the same name.
	ErrDuplicateTable = errors.New("charmaps: duplicate table name")
	// ErrNotFound is returned by Get for unknown names.
	ErrNotFound = errors.New("charmaps: table not found")
)
