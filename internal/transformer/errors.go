package transformer

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the category shared by all input validation errors.
var ErrInvalidArgument = errors.New("transformer: invalid argument")

// ErrNullInput is returned by Transform when the source slice is nil.
var ErrNullInput = fmt.Errorf("%w: source is nil", ErrInvalidArgument)

// ErrEmptyInput is returned by Transform when the source slice has no elements.
var ErrEmptyInput = fmt.Errorf("%w: source is empty", ErrInvalidArgument)
