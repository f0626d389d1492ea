package domain

import (
	"errors"
	"fmt"
)

// Fetch-stage errors. Each carries the fields needed to diagnose the
// failed request; none of them is retried within a run.

// MissingRedirectTargetError indicates a redirect response without a
// Location header.
type MissingRedirectTargetError struct {
	Status int
	URL    string
}

func (e *MissingRedirectTargetError) Error() string {
	return fmt.Sprintf("HTTP %d redirect missing Location header for GET %s", e.Status, e.URL)
}

// InvalidRedirectTargetError indicates a Location header that could not be
// parsed back into a URL.
type InvalidRedirectTargetError struct {
	Status   int
	URL      string
	Location string
	Err      error
}

func (e *InvalidRedirectTargetError) Error() string {
	return fmt.Sprintf("HTTP %d redirect Location %q is not a valid URL for GET %s", e.Status, e.Location, e.URL)
}

func (e *InvalidRedirectTargetError) Unwrap() error {
	return e.Err
}

// RedirectLimitExceededError indicates the hop budget ran out before a
// 200 response was reached.
type RedirectLimitExceededError struct {
	MaxHops     int
	LastURL     string
	OriginalURL string
}

func (e *RedirectLimitExceededError) Error() string {
	return fmt.Sprintf("exceeded %d redirects, last URL %s for GET %s", e.MaxHops, e.LastURL, e.OriginalURL)
}

// UnhandledStatusError indicates a terminal, non-200, non-redirect status.
type UnhandledStatusError struct {
	Status int
	URL    string
}

func (e *UnhandledStatusError) Error() string {
	return fmt.Sprintf("HTTP %d unhandled status for GET %s", e.Status, e.URL)
}

// TransportError wraps a DNS, connection, TLS or timeout failure. It
// terminates the fetch attempt without consuming a redirect hop.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure for GET %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MalformedItemError indicates a feed item missing its title or enclosure.
// The item is skipped before any fetch is attempted.
type MalformedItemError struct {
	Title        string
	EnclosureURL string
}

func (e *MalformedItemError) Error() string {
	return fmt.Sprintf("feed item missing title or enclosure (title=%q, enclosure=%q)", e.Title, e.EnclosureURL)
}

// Storage-stage errors.

// DirectoryCreateError indicates the output directory could not be created.
type DirectoryCreateError struct {
	Dir string
	Err error
}

func (e *DirectoryCreateError) Error() string {
	return fmt.Sprintf("create directory %s: %v", e.Dir, e.Err)
}

func (e *DirectoryCreateError) Unwrap() error {
	return e.Err
}

// FileOpenError indicates the destination file could not be opened.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("open file %s: %v", e.Path, e.Err)
}

func (e *FileOpenError) Unwrap() error {
	return e.Err
}

// IOError indicates a read or write failure during the body transfer.
// The partially written file is left in place.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("transfer to %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// IsFetchError returns true if err originated in the fetch stage
// (redirect handling, status handling or transport).
func IsFetchError(err error) bool {
	var (
		missing   *MissingRedirectTargetError
		invalid   *InvalidRedirectTargetError
		exceeded  *RedirectLimitExceededError
		unhandled *UnhandledStatusError
		transport *TransportError
	)
	return errors.As(err, &missing) ||
		errors.As(err, &invalid) ||
		errors.As(err, &exceeded) ||
		errors.As(err, &unhandled) ||
		errors.As(err, &transport)
}

// IsStorageError returns true if err originated in the storage stage.
func IsStorageError(err error) bool {
	var (
		dir  *DirectoryCreateError
		open *FileOpenError
		io   *IOError
	)
	return errors.As(err, &dir) || errors.As(err, &open) || errors.As(err, &io)
}
