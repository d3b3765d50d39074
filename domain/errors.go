package domain

import "errors"

// ErrNoResult marks input a calculator cannot compute: missing, zero,
// non-numeric or out-of-domain values. Callers hide the result instead of
// showing a number.
var ErrNoResult = errors.New("no result")
