// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argparse

import (
	"errors"
	"fmt"
)

// ErrUsage is the sentinel matched by every end-user input error
// returned from [Parser.Parse]: unknown options, repeated invocations,
// mutex conflicts, missing or malformed values, wrong argument counts,
// and failed end-of-parse validation. Callers distinguish these from
// an [*ExitError] (help/version output) with errors.Is and errors.As.
//
// Programmer mistakes in the parameter declaration itself are not
// errors in this sense; they panic at setup time.
var ErrUsage = errors.New("invalid usage")

// usageError keeps the user-visible message free of a sentinel prefix
// while still matching ErrUsage under errors.Is.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func (e *usageError) Is(target error) bool {
	return target == ErrUsage
}

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}
