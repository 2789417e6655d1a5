// Package errors provides standardized error handling for rofipaste.
// It defines the error kinds a session can end with, the typed errors carrying
// them, and helpers for classifying an error as fatal or recoverable.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
	// Join combines several errors into one
	Join = errors.Join
)

// Common error constants for frequently occurring errors
var (
	ErrFileNotFound    = NewFileError("file not found", "", FileNotFound, nil)
	ErrInvalidConfig   = NewConfigError("invalid configuration", "", InvalidConfig, nil)
	ErrMalformedLine   = NewNavigationError("malformed selection", "", MalformedSelection, nil)
	ErrUnknownIcon     = NewNavigationError("unknown entry icon", "", UnknownIcon, nil)
	ErrOutsideBase     = NewNavigationError("path escapes the pastes folder", "", OutsideBase, nil)
	ErrUnknownCommand  = NewCommandError("unknown command", "", UnknownCommand, nil)
	ErrToolUnavailable = NewEnvironmentError("external tool unavailable", "", ToolUnavailable, nil)
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// File error kinds
	FileNotFound
	FileAccessDenied
	// Config error kinds
	InvalidConfig
	ConfigNotFound
	// Navigation error kinds
	FolderUnreadable
	MalformedSelection
	UnknownIcon
	OutsideBase
	UnexpectedExitCode
	// Execution error kinds
	InterpreterFailed
	// Environment error kinds
	ToolUnavailable
	ToolFailed
	// Command error kinds
	UnknownCommand
	EmptyCommand
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// subjectError is shared by the typed errors that name what they failed on.
type subjectError struct {
	ApplicationError
	subject string
}

func (e *subjectError) Error() string {
	if e.subject != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.subject, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.subject)
	}
	return e.ApplicationError.Error()
}

// Is matches typed errors by kind so sentinels like ErrUnknownIcon match any
// error of the same kind regardless of subject.
func (e *subjectError) Is(target error) bool {
	var app interface{ Kind() ErrorKind }
	if !errors.As(target, &app) {
		return false
	}
	return app.Kind() == e.kind && e.kind != Unknown
}

func newSubject(msg, subject string, kind ErrorKind, err error) subjectError {
	return subjectError{
		ApplicationError: ApplicationError{msg: msg, err: err, kind: kind},
		subject:          subject,
	}
}

// FileError represents errors related to file operations
type FileError struct {
	subjectError
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{newSubject(msg, path, kind, err)}
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.subject
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	subjectError
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{newSubject(msg, param, kind, err)}
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.subject
}

// NavigationError is an input error in the browsing loop: a folder that cannot
// be listed, a selection line that cannot be parsed, an icon nothing maps to.
// Navigation errors end the session with a non-zero exit code.
type NavigationError struct {
	subjectError
}

// NewNavigationError creates a new navigation error
func NewNavigationError(msg string, subject string, kind ErrorKind, err error) *NavigationError {
	return &NavigationError{newSubject(msg, subject, kind, err)}
}

// Subject returns the selection line or path the error refers to
func (e *NavigationError) Subject() string {
	return e.subject
}

// ExecutionError reports an executable paste whose interpreter could not be
// started or exited non-zero. The session shows it and returns to the listing.
type ExecutionError struct {
	subjectError
	stderr string
}

// NewExecutionError creates a new execution error for the paste at path
func NewExecutionError(msg string, path string, stderr string, err error) *ExecutionError {
	return &ExecutionError{subjectError: newSubject(msg, path, InterpreterFailed, err), stderr: stderr}
}

// Path returns the paste path
func (e *ExecutionError) Path() string {
	return e.subject
}

// Stderr returns what the interpreter wrote to standard error, if anything
func (e *ExecutionError) Stderr() string {
	return e.stderr
}

// EnvironmentError reports a missing or failing external tool
type EnvironmentError struct {
	subjectError
}

// NewEnvironmentError creates a new environment error for the named tool
func NewEnvironmentError(msg string, tool string, kind ErrorKind, err error) *EnvironmentError {
	return &EnvironmentError{newSubject(msg, tool, kind, err)}
}

// Tool returns the external tool name
func (e *EnvironmentError) Tool() string {
	return e.subject
}

// CommandError reports a slash command that could not be dispatched
type CommandError struct {
	subjectError
}

// NewCommandError creates a new command error for verb
func NewCommandError(msg string, verb string, kind ErrorKind, err error) *CommandError {
	return &CommandError{newSubject(msg, verb, kind, err)}
}

// Verb returns the command verb
func (e *CommandError) Verb() string {
	return e.subject
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// IsFileNotFound checks if the error is a file not found error
func IsFileNotFound(err error) bool {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind() == FileNotFound
	}
	return false
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsNavigation checks if the error is a navigation (input) error
func IsNavigation(err error) bool {
	var navErr *NavigationError
	return errors.As(err, &navErr)
}

// IsExecution checks if the error is an interpreter execution error
func IsExecution(err error) bool {
	var execErr *ExecutionError
	return errors.As(err, &execErr)
}

// IsEnvironment checks if the error comes from an external tool
func IsEnvironment(err error) bool {
	var envErr *EnvironmentError
	return errors.As(err, &envErr)
}

// IsUnknownCommand checks if the error is an unknown slash command
func IsUnknownCommand(err error) bool {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Kind() == UnknownCommand
	}
	return false
}

// IsRecoverable reports whether the session can show err and continue.
// Only execution errors qualify; everything else ends the session.
func IsRecoverable(err error) bool {
	return IsExecution(err)
}

// IsFatal reports whether err ends the session
func IsFatal(err error) bool {
	return err != nil && !IsRecoverable(err)
}
