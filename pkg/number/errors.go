package number

import "errors"

var (
	ErrUnknownKind     = errors.New("unknown number kind")
	ErrBoundOutOfRange = errors.New("bound outside the range of the number kind")
)
