// Package errors provides classified error primitives shared by the chartytools commands.
//
// Key features:
//   - ErrorCategory: Broad error classification (config, validation, filesystem, parse, ...)
//   - ErrorSeverity: Impact level (fatal, error, warning, info)
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - CLIErrorAdapter: exit code mapping and presentation for the CLI
//
// Example usage:
//
//	err := errors.WrapError(ioErr, errors.CategoryFileSystem, "write doc stub").
//		WithContext("path", path).
//		Build()
package errors
