package jsondelta

import "errors"

// ErrInvalidDelta is wrapped by any error describing a malformed delta:
// an array-form delta of the wrong length, an unrecognized operation code,
// or an underscore-prefixed array-delta entry that isn't a delete or move.
var ErrInvalidDelta = errors.New("invalid delta")

// ErrUnsupportedOperation is wrapped by errors raised when a delta names
// the reserved text-diff operation (code 2), which this package does not
// implement.
var ErrUnsupportedOperation = errors.New("unsupported operation")
