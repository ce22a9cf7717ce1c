package ffi

import (
	stderrors "errors"

	"github.com/edgefirst/schemas-go/errors"
)

// Status is the closed result-code set crossing the foreign boundary.
// Foreign callers see nothing richer: no Go errors, no panics, only a
// status per call plus whatever out-parameters the operation defines.
type Status int32

const (
	StatusOK Status = iota
	StatusInvalidArgument
	StatusAllocationFailed
	StatusBufferTooSmall
	StatusMalformedMessage
)

var statusNames = [...]string{
	StatusOK:               "ok",
	StatusInvalidArgument:  "invalid_argument",
	StatusAllocationFailed: "allocation_failed",
	StatusBufferTooSmall:   "buffer_too_small",
	StatusMalformedMessage: "malformed_message",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// StatusFromError collapses the library's precise error kinds into the
// closed status set. Decode-side failures of any kind are malformed
// messages; encode-side precondition failures are invalid arguments.
func StatusFromError(err error) Status {
	if err == nil {
		return StatusOK
	}

	var se *errors.Error
	if !stderrors.As(err, &se) {
		return StatusMalformedMessage
	}

	switch se.Kind {
	case errors.KindAllocation:
		return StatusAllocationFailed
	case errors.KindBufferTooSmall:
		return StatusBufferTooSmall
	case errors.KindMalformed, errors.KindOutOfBounds:
		return StatusMalformedMessage
	case errors.KindInvalidUTF8, errors.KindOverflow:
		if se.Phase == errors.PhaseDecode {
			return StatusMalformedMessage
		}
		return StatusInvalidArgument
	case errors.KindInvalidArgument, errors.KindTypeMismatch,
		errors.KindUnsupported, errors.KindNotFound:
		return StatusInvalidArgument
	default:
		if se.Phase == errors.PhaseDecode {
			return StatusMalformedMessage
		}
		return StatusInvalidArgument
	}
}
