package snake

import "errors"

// Round construction errors.
var (
	ErrGridTooSmall   = errors.New("grid too small for starting positions")
	ErrNoFood         = errors.New("food count must be positive")
	ErrBodyTooShort   = errors.New("body length must be at least 3")
	ErrTooManyActors  = errors.New("too many actors for grid width")
	ErrDuplicateName  = errors.New("duplicate actor name")
	ErrEmptyActorName = errors.New("actor name is empty")
)
