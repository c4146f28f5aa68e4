package urlparser

import (
	"errors"
	"fmt"
)

var (
	// ErrParsing is matched by every *ParsingError through errors.Is.
	ErrParsing = errors.New("url could not be parsed")

	// ErrUnknownMode is returned when a parsing mode name is not recognised.
	ErrUnknownMode = errors.New("unknown parsing mode")
)

// ParsingError is returned when a pattern does not match the whole input.
type ParsingError struct {
	Input string
}

// Error implements the error interface.
func (e *ParsingError) Error() string {
	return fmt.Sprintf(`The given URL ("%s") could not be parsed.`, e.Input)
}

// Is reports whether target is [ErrParsing].
func (e *ParsingError) Is(target error) bool {
	return target == ErrParsing
}
