// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by acquisition. Typed errors below wrap them, so callers
// can match with errors.Is and extract details with errors.As.
var (
	// ErrParseFailure indicates a malformed configuration document.
	ErrParseFailure = errors.New("configuration parse failure")
	// ErrIncludeNotFound indicates an explicitly declared include target
	// that does not exist.
	ErrIncludeNotFound = errors.New("configuration include not found")
	// ErrInvalidIncludes indicates an includes table of the wrong shape.
	ErrInvalidIncludes = errors.New("invalid configuration includes")
	// ErrDependencyAbsence indicates that no acquirer backs a requested
	// document format.
	ErrDependencyAbsence = errors.New("dependency absent")
	// ErrAddressLocate indicates that an edit address does not exist.
	ErrAddressLocate = errors.New("address locate failure")
	// ErrEntryAssertion indicates that an array element lacks a required
	// entry.
	ErrEntryAssertion = errors.New("entry assertion failure")
	// ErrInvalidRequest indicates an acquisition request lacking inputs.
	ErrInvalidRequest = errors.New("invalid acquisition request")
	// ErrInvalidOptions indicates unusable acquirer options.
	ErrInvalidOptions = errors.New("invalid acquirer options")
)

// ParseError reports a malformed document at Source.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse configuration from %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParseFailure }

// IncludeError reports an include spec whose target does not exist.
type IncludeError struct {
	Spec string
	Path string
}

func (e *IncludeError) Error() string {
	return fmt.Sprintf("could not locate include %q (resolved to %s)", e.Spec, e.Path)
}

func (e *IncludeError) Is(target error) bool { return target == ErrIncludeNotFound }

// AddressLocateError reports the part of an edit address which could not
// be located.
type AddressLocateError struct {
	Subject string
	Address []string
	Part    string
}

func (e *AddressLocateError) Error() string {
	return fmt.Sprintf("could not locate part '%s' of address '%s' in %s",
		e.Part, strings.Join(e.Address, "."), e.Subject)
}

func (e *AddressLocateError) Is(target error) bool { return target == ErrAddressLocate }

// EntryAssertionError reports an element lacking an expected entry.
type EntryAssertionError struct {
	Subject string
	Name    string
}

func (e *EntryAssertionError) Error() string {
	return fmt.Sprintf("could not find entry '%s' in %s", e.Name, e.Subject)
}

func (e *EntryAssertionError) Is(target error) bool { return target == ErrEntryAssertion }
