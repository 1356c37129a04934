// Package magickerr defines the two error kinds used across the tool.
//
// ArgParseErr is a lightweight error produced while parsing a single
// argument value; it carries an optional message and is formatted
// together with the option it belongs to. MagickError is the top-level
// error for everything else: I/O failures, plan-level problems, and
// ArgParseErr values promoted with their option name.
package magickerr

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// MagickError is the only error type that reaches the user. The message
// is final: nothing is appended or rewritten on the way out.
type MagickError struct {
	Message string
}

func (e *MagickError) Error() string {
	return e.Message
}

// Errorf builds a MagickError tagged with the caller's file and line,
// mirroring the diagnostics of the reference tool.
func Errorf(format string, args ...any) *MagickError {
	msg := fmt.Sprintf(format, args...)
	if _, file, line, ok := runtime.Caller(1); ok {
		msg = fmt.Sprintf("gomagick: %s @ %s:%d", msg, filepath.Base(file), line)
	} else {
		msg = "gomagick: " + msg
	}
	return &MagickError{Message: msg}
}

// ArgParseErr reports a malformed argument value. An empty Message
// means "echo the raw value back as the diagnostic".
type ArgParseErr struct {
	Message string
}

func (e *ArgParseErr) Error() string {
	if e.Message == "" {
		return "invalid argument"
	}
	return e.Message
}

// NewArgParseErr returns an ArgParseErr with no specific message.
func NewArgParseErr() *ArgParseErr {
	return &ArgParseErr{}
}

// ArgParseErrf returns an ArgParseErr with a specific message.
func ArgParseErrf(format string, args ...any) *ArgParseErr {
	return &ArgParseErr{Message: fmt.Sprintf(format, args...)}
}

// DisplayWithArg renders the error the way the legacy tool does: the
// specific message if there is one, otherwise the raw value the user
// passed.
func (e *ArgParseErr) DisplayWithArg(argName, value string) string {
	message := e.Message
	if message == "" {
		message = value
	}
	return fmt.Sprintf("invalid argument for option `%s': %s", argName, message)
}

// Promote converts an ArgParseErr into the MagickError shown to the
// user, attaching the option name and raw value.
func (e *ArgParseErr) Promote(argName, value string) *MagickError {
	return &MagickError{Message: "gomagick: " + e.DisplayWithArg(argName, value)}
}
