package emulator

import (
	"errors"

	"github.com/ezrec/lc3/translate"
)

var f = translate.From

var (
	// ErrImageTruncated indicates an image too short for its origin
	// word, or one ending mid-word.
	ErrImageTruncated = errors.New(f("image truncated"))
	// ErrImageOverflow indicates an image that would load past the end
	// of memory.
	ErrImageOverflow = errors.New(f("image exceeds memory"))
)

// ErrImage reports which image file failed to load.
type ErrImage struct {
	Path string
	Err  error
}

func (err *ErrImage) Error() string {
	return f("image %v: %v", err.Path, err.Err)
}

func (err *ErrImage) Unwrap() error {
	return err.Err
}
