// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package distribution

import (
	"errors"
	"fmt"
)

// ErrLocateFailure indicates that no usable distribution location could be
// determined.
var ErrLocateFailure = errors.New("distribution locate failure")

// LocateError reports an exhausted search for Marker, which started at
// Start and stopped at Stop.
type LocateError struct {
	Marker string
	Start  string
	Stop   string
}

func (e *LocateError) Error() string {
	return fmt.Sprintf("could not locate marker file %q between %s and %s", e.Marker, e.Start, e.Stop)
}

func (e *LocateError) Is(target error) bool { return target == ErrLocateFailure }
