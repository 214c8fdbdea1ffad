package xerror

import (
	"fmt"

	"github.com/pkg/errors"
)

type ErrType int

const (
	Normal ErrType = iota
	Registry
)

func (e ErrType) String() string {
	switch e {
	case Normal:
		return "normal"
	case Registry:
		return "registry"
	default:
		return "unknown"
	}
}

// a wrapped error with error type, the stack is added by pkg/errors
type XError struct {
	ErrType ErrType
	Err     error
}

func (e *XError) Error() string {
	return fmt.Sprintf("[%s] %s", e.ErrType, e.Err.Error())
}

func (e *XError) Unwrap() error {
	return e.Err
}

func New(errType ErrType, message string) error {
	err := &XError{
		ErrType: errType,
		Err:     errors.New(message),
	}
	return errors.WithStack(err)
}

func Errorf(errType ErrType, format string, args ...interface{}) error {
	err := &XError{
		ErrType: errType,
		Err:     fmt.Errorf(format, args...),
	}
	return errors.WithStack(err)
}

func Wrap(err error, errType ErrType, message string) error {
	if err == nil {
		return nil
	}
	err = &XError{
		ErrType: errType,
		Err:     err,
	}
	return errors.Wrap(err, message)
}

func Wrapf(err error, errType ErrType, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	err = &XError{
		ErrType: errType,
		Err:     err,
	}
	return errors.Wrapf(err, format, args...)
}

// TypeOf returns the type of the outermost XError in the chain, Normal if none.
func TypeOf(err error) ErrType {
	var xerr *XError
	if errors.As(err, &xerr) {
		return xerr.ErrType
	}
	return Normal
}
