package game

import (
	"errors"
	"fmt"
)

// Reason classifies why a move was rejected.
type Reason int

const (
	Legal Reason = iota
	ParseError
	IllegalSource
	IllegalDestination
	IllegalCapture
	SpuriousCapture
)

var (
	ErrParse              = errors.New("malformed move")
	ErrIllegalSource      = errors.New("illegal source")
	ErrIllegalDestination = errors.New("illegal destination")
	ErrIllegalCapture     = errors.New("illegal capture")
	ErrSpuriousCapture    = errors.New("capture without a mill")
)

func (r Reason) String() string {
	switch r {
	case Legal:
		return "Legal"
	case ParseError:
		return "ParseError"
	case IllegalSource:
		return "IllegalSource"
	case IllegalDestination:
		return "IllegalDestination"
	case IllegalCapture:
		return "IllegalCapture"
	case SpuriousCapture:
		return "SpuriousCapture"
	default:
		return "Unknown"
	}
}

func (r Reason) sentinel() error {
	switch r {
	case ParseError:
		return ErrParse
	case IllegalSource:
		return ErrIllegalSource
	case IllegalDestination:
		return ErrIllegalDestination
	case IllegalCapture:
		return ErrIllegalCapture
	case SpuriousCapture:
		return ErrSpuriousCapture
	default:
		return nil
	}
}

// RuleError reports a rejected move. It unwraps to the sentinel of its Reason,
// so errors.Is(err, ErrIllegalCapture) works on any rejection.
type RuleError struct {
	Reason Reason
	Move   string
	Detail string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%s: %q: %s", e.Reason, e.Move, e.Detail)
}

func (e *RuleError) Unwrap() error {
	return e.Reason.sentinel()
}

// ReasonOf extracts the rejection reason from err, or Legal when err is nil or not a RuleError.
func ReasonOf(err error) Reason {
	var re *RuleError
	if errors.As(err, &re) {
		return re.Reason
	}
	return Legal
}

func reject(reason Reason, m Move, format string, args ...any) *RuleError {
	return &RuleError{
		Reason: reason,
		Move:   m.String(),
		Detail: fmt.Sprintf(format, args...),
	}
}
