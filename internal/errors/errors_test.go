package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())

	err = Newf("formatted %s", "error")
	assert.Equal(t, "formatted error", err.Error())

	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, Unknown, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	origErr := New("original error")
	wrappedErr := Wrap(origErr, "wrapped")
	assert.Equal(t, "wrapped: original error", wrappedErr.Error())
	assert.Equal(t, origErr, Unwrap(wrappedErr))

	wrappedFormatted := Wrapf(origErr, "formatted %s", "wrapper")
	assert.Equal(t, "formatted wrapper: original error", wrappedFormatted.Error())

	assert.Nil(t, Wrap(nil, "wrapper"))
	assert.Nil(t, Wrapf(nil, "formatted %s", "wrapper"))

	deepWrapped := Wrap(wrappedErr, "deeper")
	assert.Equal(t, "deeper: wrapped: original error", deepWrapped.Error())
	assert.True(t, Is(deepWrapped, origErr))
}

func TestFileError(t *testing.T) {
	fileErr := NewFileError("cannot access", "/path/to/file", FileAccessDenied, nil)
	assert.Equal(t, "cannot access: /path/to/file", fileErr.Error())
	assert.Equal(t, "/path/to/file", fileErr.Path())
	assert.Equal(t, FileAccessDenied, fileErr.Kind())

	origErr := fmt.Errorf("permission denied")
	fileErr = NewFileError("cannot access", "/path/to/file", FileAccessDenied, origErr)
	assert.Equal(t, "cannot access: /path/to/file: permission denied", fileErr.Error())
	assert.Equal(t, origErr, Unwrap(fileErr))

	assert.Equal(t, "file not found", ErrFileNotFound.Error())
	assert.True(t, IsFileNotFound(NewFileError("file not found", "/missing", FileNotFound, nil)))
	assert.False(t, IsFileNotFound(fileErr))
}

func TestNavigationError(t *testing.T) {
	err := NewNavigationError("unknown entry icon", "? foo", UnknownIcon, nil)
	assert.Equal(t, "unknown entry icon: ? foo", err.Error())
	assert.Equal(t, "? foo", err.Subject())
	assert.True(t, IsNavigation(err))
	assert.False(t, IsRecoverable(err))

	// Sentinels match by kind, whatever the subject
	assert.True(t, errors.Is(err, ErrUnknownIcon))
	assert.False(t, errors.Is(err, ErrMalformedLine))

	wrapped := fmt.Errorf("session: %w", err)
	assert.True(t, IsNavigation(wrapped))
	assert.True(t, errors.Is(wrapped, ErrUnknownIcon))
}

func TestExecutionError(t *testing.T) {
	cause := fmt.Errorf("exit status 3")
	err := NewExecutionError("interpreter failed", "/pastes/date", "boom", cause)
	assert.Equal(t, "interpreter failed: /pastes/date: exit status 3", err.Error())
	assert.Equal(t, "/pastes/date", err.Path())
	assert.Equal(t, "boom", err.Stderr())
	assert.Equal(t, InterpreterFailed, err.Kind())
	assert.True(t, IsExecution(err))
	assert.True(t, IsRecoverable(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsFatal(err))
}

func TestEnvironmentError(t *testing.T) {
	err := NewEnvironmentError("external tool unavailable", "xsel", ToolUnavailable, nil)
	assert.Equal(t, "xsel", err.Tool())
	assert.True(t, IsEnvironment(err))
	assert.True(t, errors.Is(err, ErrToolUnavailable))
	assert.False(t, IsRecoverable(err))
	assert.True(t, IsFatal(err))
	assert.False(t, IsFatal(nil))
}

func TestCommandError(t *testing.T) {
	err := NewCommandError("unknown command", "frobnicate", UnknownCommand, nil)
	assert.Equal(t, "unknown command: frobnicate", err.Error())
	assert.Equal(t, "frobnicate", err.Verb())
	assert.True(t, IsUnknownCommand(err))
	assert.False(t, IsUnknownCommand(NewCommandError("empty command", "", EmptyCommand, nil)))
	assert.False(t, IsUnknownCommand(New("plain")))
}

func TestConfigError(t *testing.T) {
	err := NewConfigError("invalid configuration", "settings.picker", InvalidConfig, fmt.Errorf("unknown picker"))
	assert.Equal(t, "invalid configuration: settings.picker: unknown picker", err.Error())
	assert.Equal(t, "settings.picker", err.Param())
	assert.True(t, IsInvalidConfig(err))
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}
