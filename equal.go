package jsondelta

import "reflect"

// deepEqual reports whether a and b are structurally equal JSON values:
// scalars by value, arrays element-wise in order, objects by equal key set
// and equal values per key with key order irrelevant.
func deepEqual(a, b interface{}) bool {
	switch av := a.(type) {
	case map[string]interface{}:
		bv, ok := b.(map[string]interface{})
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, aval := range av {
			bval, ok := bv[k]
			if !ok || !deepEqual(aval, bval) {
				return false
			}
		}
		return true
	case []interface{}:
		bv, ok := b.([]interface{})
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a, b)
	}
}

// cloneValue returns a deep, independently-owned copy of v. Diff and the
// appliers clone before mutating so a caller's own values are never aliased
// by a returned result.
func cloneValue(v interface{}) interface{} {
	switch x := v.(type) {
	case map[string]interface{}:
		c := make(map[string]interface{}, len(x))
		for k, val := range x {
			c[k] = cloneValue(val)
		}
		return c
	case []interface{}:
		c := make([]interface{}, len(x))
		for i, val := range x {
			c[i] = cloneValue(val)
		}
		return c
	default:
		return v
	}
}
