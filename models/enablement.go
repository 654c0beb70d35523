// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOperationInvalidity is returned when an operation is not valid for the
// value it is invoked on.
var ErrOperationInvalidity = errors.New("invalid operation")

// EnablementTristate is a disable/retain/enable switch. Retain means "keep
// whatever the current setting is".
type EnablementTristate string

const (
	EnablementDisable EnablementTristate = "disable"
	EnablementRetain  EnablementTristate = "retain"
	EnablementEnable  EnablementTristate = "enable"
)

// ParseEnablementTristate parses a case-insensitive tristate name.
func ParseEnablementTristate(s string) (EnablementTristate, error) {
	switch t := EnablementTristate(strings.ToLower(strings.TrimSpace(s))); t {
	case EnablementDisable, EnablementRetain, EnablementEnable:
		return t, nil
	}
	return "", fmt.Errorf("unknown enablement %q (want disable, retain or enable)", s)
}

// Bool converts the tristate to a boolean. Retain has no boolean value.
func (t EnablementTristate) Bool() (bool, error) {
	switch t {
	case EnablementDisable:
		return false, nil
	case EnablementEnable:
		return true, nil
	}
	return false, fmt.Errorf("%w: cannot convert %q to bool", ErrOperationInvalidity, string(t))
}

// IsRetain reports whether t is EnablementRetain.
func (t EnablementTristate) IsRetain() bool {
	return t == EnablementRetain
}

// String implements fmt.Stringer.
func (t EnablementTristate) String() string {
	return string(t)
}

// Set implements pflag.Value.
func (t *EnablementTristate) Set(s string) error {
	parsed, err := ParseEnablementTristate(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Type implements pflag.Value.
func (t *EnablementTristate) Type() string {
	return "enablement"
}
