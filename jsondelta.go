package jsondelta

import (
	"encoding/json"
	"fmt"
)

// DiffJSON unmarshals left and right, computes their delta, and marshals the
// result back to JSON. An empty or nil input is treated as the empty-string
// scalar.
func DiffJSON(left, right []byte, opts ...DiffOption) ([]byte, error) {
	lv, err := unmarshalOrNull(left)
	if err != nil {
		return nil, fmt.Errorf("decoding left: %w", err)
	}
	rv, err := unmarshalOrNull(right)
	if err != nil {
		return nil, fmt.Errorf("decoding right: %w", err)
	}

	delta, err := Diff(lv, rv, opts...)
	if err != nil {
		return nil, err
	}
	if delta == nil {
		return []byte("null"), nil
	}
	return json.Marshal(delta)
}

// PatchJSON unmarshals left and delta, applies delta to left, and marshals
// the result back to JSON.
func PatchJSON(left, delta []byte) ([]byte, error) {
	lv, err := unmarshalOrNull(left)
	if err != nil {
		return nil, fmt.Errorf("decoding left: %w", err)
	}
	dv, err := unmarshalOrNull(delta)
	if err != nil {
		return nil, fmt.Errorf("decoding delta: %w", err)
	}

	result, err := Patch(lv, dv)
	if err != nil {
		return nil, err
	}
	return marshalOrNull(result)
}

// UnpatchJSON unmarshals right and delta, reverses delta against right, and
// marshals the result back to JSON.
func UnpatchJSON(right, delta []byte) ([]byte, error) {
	rv, err := unmarshalOrNull(right)
	if err != nil {
		return nil, fmt.Errorf("decoding right: %w", err)
	}
	dv, err := unmarshalOrNull(delta)
	if err != nil {
		return nil, fmt.Errorf("decoding delta: %w", err)
	}

	result, err := Unpatch(rv, dv)
	if err != nil {
		return nil, err
	}
	return marshalOrNull(result)
}

func unmarshalOrNull(b []byte) (interface{}, error) {
	if len(b) == 0 {
		return "", nil
	}
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func marshalOrNull(v interface{}) ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}
