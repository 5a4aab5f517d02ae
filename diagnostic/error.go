package diagnostic

import (
	"errors"
	"fmt"

	"github.com/pattyshack/gt/parseutil"
)

// Error is a fatal analysis error.  Analysis of the file stops at the first
// error, there is no recovery.
type Error struct {
	Code     Code
	Location parseutil.Location
	Message  string

	Err error // optional
}

func New(
	code Code,
	loc parseutil.Location,
	format string,
	args ...interface{},
) *Error {
	msg := code.Description()
	if format != "" {
		msg = fmt.Sprintf(format, args...)
	}
	return &Error{
		Code:     code,
		Location: loc,
		Message:  msg,
	}
}

func Wrap(code Code, loc parseutil.Location, err error) *Error {
	return &Error{
		Code:     code,
		Location: loc,
		Message:  fmt.Sprintf("%s: %s", code.Description(), err),
		Err:      err,
	}
}

func (err *Error) Kind() Kind {
	return err.Code.Kind()
}

func (err *Error) Loc() parseutil.Location {
	return err.Location
}

func (err *Error) Error() string {
	return fmt.Sprintf(
		"%s: %s error (%s): %s",
		err.Location,
		err.Kind(),
		err.Code,
		err.Message)
}

func (err *Error) Unwrap() error {
	return err.Err
}

// CodeOf returns the code of the first *Error in err's chain.
func CodeOf(err error) (Code, bool) {
	var diag *Error
	if errors.As(err, &diag) {
		return diag.Code, true
	}
	return 0, false
}
