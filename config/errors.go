// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by a [Provider] when it has no value for a key.
// A [Reader] treats it as a signal to consult the next provider.
var ErrNotFound = errors.New("config: key not found")

// KeyNotFoundError occurs when no provider resolved a key and
// the caller did not supply a default.
type KeyNotFoundError struct {
	Key string
}

// Error implements the [builtin.error] interface.
func (e KeyNotFoundError) Error() string {
	return fmt.Sprintf("config: no provider has a value for key: %s", e.Key)
}

// Is reports whether target is [ErrNotFound].
func (e KeyNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// RequiredFileError occurs when a provider is configured to require
// its backing file and the file does not exist.
type RequiredFileError struct {
	Provider string
	Path     string
}

// Error implements the [builtin.error] interface.
func (e RequiredFileError) Error() string {
	return fmt.Sprintf("config: %s requires a file which does not exist: %s", e.Provider, e.Path)
}

// MalformedLineError occurs when a line of an env file is neither blank,
// a comment nor a KEY=value assignment.
type MalformedLineError struct {
	Path string
	Line int
	Text string
}

// Error implements the [builtin.error] interface.
func (e MalformedLineError) Error() string {
	return fmt.Sprintf("config: %s:%d: expected KEY=value: %q", e.Path, e.Line, e.Text)
}

// FileReadError occurs when a provider fails to read its backing file.
type FileReadError struct {
	Path  string
	Cause error
}

// Error implements the [builtin.error] interface.
func (e FileReadError) Error() string {
	return fmt.Sprintf("config: failed to read %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e FileReadError) Unwrap() error {
	return e.Cause
}

// InvalidYamlError occurs if a YAML provider's file contains invalid YAML.
type InvalidYamlError struct {
	Path  string
	Cause error
}

// Error implements the [builtin.error] interface.
func (e InvalidYamlError) Error() string {
	return fmt.Sprintf("config: invalid yaml in %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e InvalidYamlError) Unwrap() error {
	return e.Cause
}

// OptionDecodeError occurs when a provider's option block can not
// be decoded into the options that provider understands.
type OptionDecodeError struct {
	Provider string
	Cause    error
}

// Error implements the [builtin.error] interface.
func (e OptionDecodeError) Error() string {
	return fmt.Sprintf("config: invalid options for %s: %s", e.Provider, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e OptionDecodeError) Unwrap() error {
	return e.Cause
}

// ProviderInitError wraps any error returned while a [Reader]
// constructs one of its providers.
type ProviderInitError struct {
	Provider string
	Cause    error
}

// Error implements the [builtin.error] interface.
func (e ProviderInitError) Error() string {
	return fmt.Sprintf("config: failed to initialize provider %s: %s", e.Provider, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e ProviderInitError) Unwrap() error {
	return e.Cause
}

// UnsupportedTypeError occurs when a value's kind can not be coerced
// into the requested type at all.
type UnsupportedTypeError struct {
	Kind   Kind
	Target string
}

// Error implements the [builtin.error] interface.
func (e UnsupportedTypeError) Error() string {
	return fmt.Sprintf("config: can't convert value of kind %s to %s", e.Kind, e.Target)
}

// TypeCoercionError occurs when a value has a supported kind but its
// content could not be converted, e.g. the text "abc" into an int.
type TypeCoercionError struct {
	Value  Value
	Target string
	Cause  error
}

// Error implements the [builtin.error] interface.
func (e TypeCoercionError) Error() string {
	return fmt.Sprintf("config: failed to coerce %q to %s: %s", e.Value.String(), e.Target, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e TypeCoercionError) Unwrap() error {
	return e.Cause
}
