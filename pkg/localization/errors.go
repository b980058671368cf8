package localization

import "errors"

var (
	// ErrDuplicateTable is returned when two files define the same table.
	ErrDuplicateTable = errors.New("localization: duplicate table")
	// ErrMissingDefaultTable is returned when the default table cannot be
	// found in the bundled assets.
	ErrMissingDefaultTable = errors.New("localization: default table missing")
)
