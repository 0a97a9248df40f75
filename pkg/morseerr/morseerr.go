// Package morseerr holds the error kinds shared by the converter, the
// renderer and the application shell.
package morseerr

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Match them with errors.Is.
var (
	ErrInput         = errors.New("input error")
	ErrConversion    = errors.New("conversion error")
	ErrAudio         = errors.New("audio error")
	ErrConfiguration = errors.New("configuration error")
	ErrType          = errors.New("type error")
	ErrRange         = errors.New("value out of range")
)

var prefixes = map[error]string{
	ErrInput:         "Input Error",
	ErrConversion:    "Conversion Error",
	ErrAudio:         "Audio Error",
	ErrConfiguration: "Configuration Error",
	ErrType:          "Type Error",
	ErrRange:         "Value Error",
}

// Error is a classified failure. Invalid lists offending runes for input
// validation failures.
type Error struct {
	Kind    error
	Msg     string
	Invalid []rune
	Err     error
}

func (e *Error) Error() string {
	msg := prefixes[e.Kind] + ": " + e.Msg
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newf(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Input(format string, args ...any) error {
	return newf(ErrInput, format, args...)
}

func Conversion(format string, args ...any) error {
	return newf(ErrConversion, format, args...)
}

func Configuration(format string, args ...any) error {
	return newf(ErrConfiguration, format, args...)
}

func Type(format string, args ...any) error {
	return newf(ErrType, format, args...)
}

func Range(format string, args ...any) error {
	return newf(ErrRange, format, args...)
}

// Audio wraps cause (which may be nil) as an audio failure.
func Audio(cause error, format string, args ...any) error {
	e := newf(ErrAudio, format, args...)
	e.Err = cause
	return e
}

// InvalidChars reports runes outside an accepted alphabet.
func InvalidChars(what string, invalid []rune, allowed string) error {
	quoted := make([]string, len(invalid))
	for i, r := range invalid {
		quoted[i] = string(r)
	}
	e := newf(ErrInput, "%s contains invalid characters: %s. %s",
		what, strings.Join(quoted, ", "), allowed)
	e.Invalid = invalid
	return e
}
