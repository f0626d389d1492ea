package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestFetchErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains []string
	}{
		{
			name:     "missing redirect target",
			err:      &MissingRedirectTargetError{Status: 301, URL: "http://a/x"},
			contains: []string{"301", "Location", "http://a/x"},
		},
		{
			name: "invalid redirect target",
			err: &InvalidRedirectTargetError{
				Status:   302,
				URL:      "http://a/x",
				Location: "::bad::",
				Err:      errors.New("parse error"),
			},
			contains: []string{"302", "::bad::", "http://a/x"},
		},
		{
			name: "redirect limit exceeded",
			err: &RedirectLimitExceededError{
				MaxHops:     10,
				LastURL:     "http://b/y",
				OriginalURL: "http://a/x",
			},
			contains: []string{"10", "http://b/y", "http://a/x"},
		},
		{
			name:     "unhandled status",
			err:      &UnhandledStatusError{Status: 404, URL: "http://a/x"},
			contains: []string{"404", "http://a/x"},
		},
		{
			name:     "transport",
			err:      &TransportError{URL: "http://a/x", Err: errors.New("connection refused")},
			contains: []string{"http://a/x", "connection refused"},
		},
		{
			name:     "malformed item",
			err:      &MalformedItemError{Title: "t", EnclosureURL: ""},
			contains: []string{`"t"`, `""`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, missing %q", msg, want)
				}
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	underlying := errors.New("root cause")

	tests := []struct {
		name string
		err  error
	}{
		{name: "transport", err: &TransportError{URL: "u", Err: underlying}},
		{name: "invalid redirect", err: &InvalidRedirectTargetError{Err: underlying}},
		{name: "directory create", err: &DirectoryCreateError{Dir: "d", Err: underlying}},
		{name: "file open", err: &FileOpenError{Path: "p", Err: underlying}},
		{name: "io", err: &IOError{Path: "p", Err: underlying}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, underlying) {
				t.Errorf("%T should unwrap to the underlying error", tt.err)
			}
		})
	}
}

func TestIsFetchError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "missing redirect target", err: &MissingRedirectTargetError{}, want: true},
		{name: "invalid redirect target", err: &InvalidRedirectTargetError{}, want: true},
		{name: "redirect limit", err: &RedirectLimitExceededError{}, want: true},
		{name: "unhandled status", err: &UnhandledStatusError{}, want: true},
		{name: "transport", err: &TransportError{}, want: true},
		{name: "wrapped transport", err: fmt.Errorf("wrapped: %w", &TransportError{}), want: true},
		{name: "storage error", err: &FileOpenError{}, want: false},
		{name: "plain error", err: errors.New("plain"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFetchError(tt.err); got != tt.want {
				t.Errorf("IsFetchError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsStorageError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "directory create", err: &DirectoryCreateError{}, want: true},
		{name: "file open", err: &FileOpenError{}, want: true},
		{name: "io", err: &IOError{}, want: true},
		{name: "wrapped io", err: fmt.Errorf("wrapped: %w", &IOError{}), want: true},
		{name: "fetch error", err: &UnhandledStatusError{}, want: false},
		{name: "plain error", err: errors.New("plain"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsStorageError(tt.err); got != tt.want {
				t.Errorf("IsStorageError() = %v, want %v", got, tt.want)
			}
		})
	}
}
