package gosuslugi

import (
	"errors"
	"fmt"
)

// Static error definitions for better error handling.
var (
	// ErrNotFound indicates that the registry has no entity with the requested key.
	ErrNotFound = errors.New("not found")
	// ErrRegionCodeIsAbsent indicates a region code missing from the region reference.
	ErrRegionCodeIsAbsent = errors.New("region code is absent in reference")
	// ErrUnsupportedFilter indicates a filter name the operation does not support.
	ErrUnsupportedFilter = errors.New("unsupported filter")
	// ErrInvalidFilter indicates a filter value the operation cannot use.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrWorksheetAbsent indicates a license workbook without worksheets.
	ErrWorksheetAbsent = errors.New("there is no worksheet in the license workbook")
	// ErrLicensesWorkbookAbsent indicates a license archive without an xlsx entry.
	ErrLicensesWorkbookAbsent = errors.New("there is no xlsx workbook in the license archive")
)

// ConnectivityError is returned when a request could not be completed at the transport level.
type ConnectivityError struct {
	// Method is the HTTP method of the failed request.
	Method string
	// URL is the requested URL.
	URL string
	// Err is the underlying transport error.
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("%s %s: connectivity error: %v", e.Method, e.URL, e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// RemoteServiceError is returned when the registry answers with a non-2xx status.
type RemoteServiceError struct {
	// Method is the HTTP method of the request.
	Method string
	// URL is the requested URL.
	URL string
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Body is the response body, cut to a few kilobytes.
	Body string
}

func (e *RemoteServiceError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: remote service error: HTTP %d", e.Method, e.URL, e.StatusCode)
	}

	return fmt.Sprintf("%s %s: remote service error: HTTP %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// DecodeError is returned when a response does not have the expected shape.
type DecodeError struct {
	// URL is the requested URL.
	URL string
	// Err describes what could not be decoded.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode error: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err means the requested entity does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StatusCode returns the HTTP status of a RemoteServiceError in the chain of err, or 0.
func StatusCode(err error) int {
	var remoteErr *RemoteServiceError
	if errors.As(err, &remoteErr) {
		return remoteErr.StatusCode
	}

	return 0
}
