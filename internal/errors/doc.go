// Package apperrors defines structured application error types for the
// calckit command-line tools, allowing for a clear distinction between
// error classes (configuration, timeout, input validation) and mapping
// every failure to a process exit code.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Wrapped errors support errors.Is() and errors.As() throughout.
package apperrors
