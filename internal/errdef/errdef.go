package errdef

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeUnknown    Code = "unknown"
	CodeParse      Code = "parse"
	CodeFilesystem Code = "filesystem"
	CodeConfig     Code = "config"
)

type Error struct {
	code Code
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err == nil {
		return e.msg
	}
	if e.msg == "" {
		return e.err.Error()
	}
	return e.msg + ": " + e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

func New(code Code, format string, args ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, args...)}
}

func Wrap(code Code, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{code: code, msg: fmt.Sprintf(format, args...), err: err}
}

// CodeOf walks the error chain for the outermost coded error.
func CodeOf(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.code
	}
	return CodeUnknown
}

// Message returns the annotation without the wrapped cause.
func Message(err error) string {
	var coded *Error
	if errors.As(err, &coded) && coded.msg != "" {
		return coded.msg
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
