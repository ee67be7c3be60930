package generation

import (
	"errors"
	"fmt"
)

// ErrBusy is returned when a generation request cannot be admitted because
// the configured concurrency budget is already spent on other keys.
var ErrBusy = errors.New("generation: model busy, try again later")

// InputError reports a request that references unknown inputs. It is surfaced
// immediately and never consumes a generation slot.
type InputError struct {
	Message string
	Cause   error
}

func (e *InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("input error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("input error: %s", e.Message)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}
