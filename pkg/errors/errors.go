// Package errors provides the error taxonomy of the e2settings system.
// Every error type supports errors.Is against a sentinel so callers can
// check the category without caring about the concrete struct.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// As and Is re-export the standard library helpers so callers need a single
// errors import.
var (
	As = errors.As
	Is = errors.Is
)

// Common sentinel errors.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that an entity already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidFormat indicates a malformed record or line
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidArgument indicates a nil or empty required input
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrReconciliation indicates a failure inside a reconciliation operation
	ErrReconciliation = errors.New("reconciliation failed")

	// ErrConflict indicates that an edit would collide with existing data
	ErrConflict = errors.New("conflict")
)

// NotFoundError represents an error when an entity is not found.
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// FormatError reports a record that does not follow the receiver format:
// unexpected field count, wrong discriminator letter and similar.
type FormatError struct {
	Record  string // "service", "transponder", "bouquet item", ...
	Line    string
	Message string
}

// Error implements the error interface
func (e *FormatError) Error() string {
	if e.Line != "" {
		return fmt.Sprintf("invalid %s record %q: %s", e.Record, e.Line, e.Message)
	}
	return fmt.Sprintf("invalid %s record: %s", e.Record, e.Message)
}

// Is implements errors.Is support
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// NewFormatError creates a new FormatError
func NewFormatError(record, line, message string) *FormatError {
	return &FormatError{Record: record, Line: line, Message: message}
}

// ArgumentError reports a missing required input.
type ArgumentError struct {
	Argument string
	Message  string
}

// Error implements the error interface
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Argument, e.Message)
}

// Is implements errors.Is support
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewArgumentError creates a new ArgumentError
func NewArgumentError(argument, message string) *ArgumentError {
	return &ArgumentError{Argument: argument, Message: message}
}

// ReconciliationError wraps an unexpected failure raised at the boundary of
// a reconciliation operation. Mutations made before the failure are kept.
type ReconciliationError struct {
	Operation   string
	Description string
	Err         error
}

// Error implements the error interface
func (e *ReconciliationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Operation, e.Description, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Description)
}

// Unwrap implements errors.Unwrap
func (e *ReconciliationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ReconciliationError) Is(target error) bool {
	return target == ErrReconciliation
}

// NewReconciliationError creates a new ReconciliationError
func NewReconciliationError(operation, description string, err error) *ReconciliationError {
	return &ReconciliationError{
		Operation:   operation,
		Description: description,
		Err:         err,
	}
}

// ConflictError is raised before any mutation when an edit would collide
// with an existing entity.
type ConflictError struct {
	Resource string
	Key      string
	Message  string
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s conflict: %s", e.Resource, e.Key, e.Message)
	}
	return fmt.Sprintf("%s %s already in use", e.Resource, e.Key)
}

// Is implements errors.Is support
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict || target == ErrAlreadyExists
}

// NewConflictError creates a new ConflictError
func NewConflictError(resource, key, message string) *ConflictError {
	return &ConflictError{Resource: resource, Key: key, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when decoding a whole document
// (catalog XML, settings file).
type ParseError struct {
	Format  string // "xml", "lamedb", "bouquet", ...
	File    string
	Line    int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s at %s:%d: %s", e.Format, e.File, e.Line, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during file access
type IOError struct {
	Operation string // "read", "write", "create", "delete", "stat"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsFormat checks if an error is a malformed record error
func IsFormat(err error) bool {
	return errors.Is(err, ErrInvalidFormat)
}

// IsArgument checks if an error is an argument error
func IsArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsReconciliation checks if an error is a reconciliation error
func IsReconciliation(err error) bool {
	return errors.Is(err, ErrReconciliation)
}

// IsConflict checks if an error is a conflict error
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapReconciliation wraps an error as a ReconciliationError. Errors that
// already belong to the reconciliation category are returned unchanged.
func WrapReconciliation(operation, description string, err error) error {
	if err == nil {
		return nil
	}
	if IsReconciliation(err) {
		return err
	}
	return NewReconciliationError(operation, description, err)
}
