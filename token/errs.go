package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated = errors.New("unterminated string")
	ErrNumber       = errors.New("malformed number literal")
	ErrChar         = errors.New("unexpected character")
)

// Error is a lexical error with the position it occurred at.
type Error struct {
	Err error
	Pos Pos
}

func NewError(e error, p *Pos) *Error {
	return &Error{Err: e, Pos: *p}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
