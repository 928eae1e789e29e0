package services

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownField means the field key names no column in the schema.
	ErrUnknownField = errors.New("unknown field")

	// ErrRowOutOfRange means the data row index points past the sheet.
	ErrRowOutOfRange = errors.New("row out of range")

	// ErrColumnUnresolved means the schema knows the field but the sheet
	// header has no matching column, so there is nowhere to write.
	ErrColumnUnresolved = errors.New("column not present in sheet")
)

// RejectedOptionError is returned when a value written to an enumerated
// field matches none of its options. Free text never reaches the sheet
// for those fields.
type RejectedOptionError struct {
	Field string
	Value string
}

func (e *RejectedOptionError) Error() string {
	return fmt.Sprintf("value %q is not a valid option for field %q", e.Value, e.Field)
}
