package bus

import "errors"

var (
	ErrClosed     = errors.New("bus closed")
	errNoCallback = errors.New("onMsg callback required")
)
