package cli

import (
	"errors"
)

var (
	ErrMissingDelimiter = errors.New("missing delimiter")
	ErrInvalidIndex     = errors.New("invalid index")
	ErrUnknownCommand   = errors.New("unknown command")
)

// CommandError is returned for input that cannot be parsed or applied.
// Kind is one of the sentinel errors of this package or of models; Msg is
// shown to the user; Err is the underlying cause, if any.
type CommandError struct {
	Kind error
	Msg  string
	Err  error
}

func (e *CommandError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return e.Msg
}

func (e *CommandError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func commandError(kind error, cause error, msg string) error {
	return &CommandError{Kind: kind, Msg: msg, Err: cause}
}
