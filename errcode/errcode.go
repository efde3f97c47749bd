package errcode

import (
	"errors"

	"go.uber.org/multierr"
)

// Code is a stable, diagnostic-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Board selection and profile validation.
	NoSelector        Code = "no_selector"
	MultipleSelectors Code = "multiple_selectors"
	UnknownSelector   Code = "unknown_selector"
	IncompleteProfile Code = "incomplete_profile"
	PinAlias          Code = "pin_alias"

	// Output bring-up.
	UnknownPin Code = "unknown_pin"
	PinInUse   Code = "pin_in_use"

	Error Code = "error" // generic fallback
)

// E keeps context and a cause alongside a Code.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Is lets errors.Is(err, errcode.PinAlias) match a wrapped *E.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// New builds an *E.
func New(c Code, op, msg string) *E {
	return &E{C: c, Op: op, Msg: msg}
}

// Of extracts a Code from an error, defaulting to Error.
// For combined errors the first coded entry wins.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	for _, e := range multierr.Errors(err) {
		if c, ok := codeOf(e); ok {
			return c
		}
	}
	return Error
}

func codeOf(err error) (Code, bool) {
	var c Code
	if errors.As(err, &c) {
		return c, true
	}
	type coder interface{ Code() Code }
	var x coder
	if errors.As(err, &x) {
		return x.Code(), true
	}
	return "", false
}
