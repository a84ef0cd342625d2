package jsondelta

import (
	"fmt"
	"math"
)

// Operation codes recognized in the third slot of a 3-element array-form
// delta: [value, index, code].
const (
	opDelete   = 0
	opTextDiff = 2
	opMove     = 3
)

// toInt converts an operation code or array index carried in a decoded
// delta value to an int. Deltas built directly by Diff carry native Go
// ints; deltas that have made a round trip through encoding/json carry
// float64. Both are accepted; anything else, or a float64 that isn't a
// whole number, is rejected.
func toInt(v interface{}) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case float64:
		if x != math.Trunc(x) {
			return 0, false
		}
		return int(x), true
	default:
		return 0, false
	}
}

// parseScalarDelta interprets a delta value encoded as a JSON array outside
// of array-delta context: [v] (add), [a, b] (replace), [a, 0, 0] (delete),
// or [_, newIdx, 3] (move — only valid inside an array delta's entries).
func parseScalarDelta(d []interface{}) (kind string, a, b interface{}, err error) {
	switch len(d) {
	case 1:
		return "add", nil, d[0], nil
	case 2:
		return "replace", d[0], d[1], nil
	case 3:
		code, ok := toInt(d[2])
		if !ok {
			return "", nil, nil, fmt.Errorf("array delta has a non-integer operation code %v: %w", d[2], ErrInvalidDelta)
		}
		switch code {
		case opDelete:
			return "delete", d[0], nil, nil
		case opMove:
			return "move", d[0], d[1], nil
		case opTextDiff:
			return "", nil, nil, fmt.Errorf("text diff operation is not supported: %w", ErrUnsupportedOperation)
		default:
			return "", nil, nil, fmt.Errorf("array delta has unrecognized operation code %d: %w", code, ErrInvalidDelta)
		}
	default:
		return "", nil, nil, fmt.Errorf("array delta of length %d is invalid: %w", len(d), ErrInvalidDelta)
	}
}

// isAddEncoding reports whether v is a [value] add-encoded delta.
func isAddEncoding(v interface{}) bool {
	arr, ok := v.([]interface{})
	return ok && len(arr) == 1
}

// isDeleteEncoding reports whether v is a [value, 0, 0] delete-encoded
// delta.
func isDeleteEncoding(v interface{}) bool {
	arr, ok := v.([]interface{})
	if !ok || len(arr) != 3 {
		return false
	}
	code, ok := toInt(arr[2])
	return ok && code == opDelete
}
