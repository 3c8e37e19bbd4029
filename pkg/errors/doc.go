// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeDataLoad,
//	    "failed to read dataset",
//	    readErr,
//	    map[string]any{
//	        "path": path,
//	        "line": line,
//	    },
//	)
//
// Each ErrorCode carries the HTTP status nutrid answers with and whether a
// client may retry: INVALID_REQUEST, NOT_FOUND and DATA_LOAD are final,
// TIMEOUT, SERVICE_UNAVAILABLE and RATE_LIMIT_EXCEEDED are not.
package errors
