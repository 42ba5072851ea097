package cli

import (
	"errors"
	"strings"
)

// Err is an error raised by a command handler whose message is printed to the user as is
type Err struct {
	message     string
	cause       error
	showCause   bool
	suggestions []string
}

// New creates a new CLI error
func New(message string) Err {
	return Err{message: message}
}

// NewWrapped creates a new CLI error that keeps the cause for errors.Is and errors.As
// but leaves it out of the printed message
func NewWrapped(message string, cause error) Err {
	return Err{message: message, cause: cause}
}

// NewPrivileged creates a new CLI error that prints the root cause after the message
func NewPrivileged(message string, cause error) Err {
	return Err{message: message, cause: cause, showCause: true}
}

// WithSuggestions returns the error with the commands to suggest to the user
func (err Err) WithSuggestions(commands ...string) Err {
	err.suggestions = commands
	return err
}

func (err Err) Error() string {
	if !err.showCause || err.cause == nil {
		return err.message
	}
	return err.message + ": " + rootCause(err.cause).Error()
}

func (err Err) Unwrap() error { return err.cause }

// DisableUsage disables usage printing
func (err Err) DisableUsage() struct{} { return struct{}{} }

// SuggestedCommands returns the commands to suggest to the user
func (err Err) SuggestedCommands() []string { return err.suggestions }

// Trace returns every message along the error chain, outermost first
func (err Err) Trace() string {
	var messages []string
	for e := error(err); e != nil; e = errors.Unwrap(e) {
		if cliErr, ok := e.(Err); ok {
			messages = append(messages, cliErr.message)
			continue
		}
		messages = append(messages, e.Error())
		break
	}
	return strings.Join(messages, ": ")
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
