package message

import (
	"errors"
	"fmt"
)

// ErrPluralKeyMissing matches any *PluralKeyMissingError with errors.Is.
var ErrPluralKeyMissing = errors.New("plural key is not provided")

// PluralKeyMissingError is returned when a plural group has no explicit key
// and no earlier number parameter or plural group established one.
type PluralKeyMissingError struct {
	// Group is the content between the double braces.
	Group string
	// Offset is the byte offset of the group in the raw template.
	Offset int
}

func (e *PluralKeyMissingError) Error() string {
	return fmt.Sprintf("%s: group {{%s}} at offset %d", ErrPluralKeyMissing, e.Group, e.Offset)
}

func (e *PluralKeyMissingError) Is(target error) bool {
	return target == ErrPluralKeyMissing
}
