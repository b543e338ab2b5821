package device

import (
	"errors"

	"github.com/ezrec/lc3/translate"
)

var f = translate.From

var (
	// ErrKeyboardClosed indicates a blocking read on a keyboard whose
	// input has ended.
	ErrKeyboardClosed = errors.New(f("keyboard closed"))
)
