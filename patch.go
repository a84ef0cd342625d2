package jsondelta

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Patch applies delta to left, producing the right-hand document the delta
// was computed against. Neither left nor delta is mutated: Patch clones
// before making any change.
func Patch(left, delta interface{}) (interface{}, error) {
	return patchValue(left, delta)
}

func patchValue(left, delta interface{}) (interface{}, error) {
	if delta == nil {
		return cloneValue(left), nil
	}
	if s, ok := delta.(string); ok && s == "" {
		return cloneValue(left), nil
	}

	switch d := delta.(type) {
	case []interface{}:
		return patchScalar(d)
	case map[string]interface{}:
		if isArrayDelta(d) {
			arr, ok := left.([]interface{})
			if !ok {
				return nil, fmt.Errorf("array delta applied to non-array value %T: %w", left, ErrInvalidDelta)
			}
			return patchArray(arr, d)
		}
		return patchObject(left, d)
	default:
		return nil, fmt.Errorf("delta has unsupported shape %T: %w", delta, ErrInvalidDelta)
	}
}

func isArrayDelta(d map[string]interface{}) bool {
	t, ok := d["_t"]
	if !ok {
		return false
	}
	ts, ok := t.(string)
	return ok && ts == "a"
}

func patchScalar(d []interface{}) (interface{}, error) {
	kind, a, b, err := parseScalarDelta(d)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "add", "replace":
		return cloneValue(b), nil
	case "delete":
		_ = a
		return nil, nil
	default:
		return nil, fmt.Errorf("move operation is not valid outside of an array delta: %w", ErrInvalidDelta)
	}
}

// patchObject applies a property-wise object delta to left, cloning left
// first. A delete-encoded property value removes the key; a property
// absent from the target is added via patch(nil, v); any other property is
// patched recursively in place.
func patchObject(left interface{}, d map[string]interface{}) (interface{}, error) {
	target, err := cloneObjectTarget(left)
	if err != nil {
		return nil, err
	}

	for k, v := range d {
		if isDeleteEncoding(v) {
			delete(target, k)
			continue
		}
		existing, present := target[k]
		if !present {
			added, err := patchValue(nil, v)
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", k, err)
			}
			target[k] = added
			continue
		}
		patched, err := patchValue(existing, v)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", k, err)
		}
		target[k] = patched
	}
	return target, nil
}

func cloneObjectTarget(left interface{}) (map[string]interface{}, error) {
	if left == nil {
		return map[string]interface{}{}, nil
	}
	m, ok := left.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("object delta applied to non-object value %T: %w", left, ErrInvalidDelta)
	}
	clone := make(map[string]interface{}, len(m))
	for k, v := range m {
		clone[k] = cloneValue(v)
	}
	return clone, nil
}

type arrayInsertion struct {
	index int
	value interface{}
}

type arrayModification struct {
	index int
	delta interface{}
}

// patchArray applies an array delta to left, cloning left first. Removes
// run in descending left-index order, then inserts run in ascending
// target-index order, then modifications run last, exactly in that order,
// so that earlier removals and insertions don't invalidate later indices.
func patchArray(left []interface{}, d map[string]interface{}) (interface{}, error) {
	target := make([]interface{}, len(left))
	for i, v := range left {
		target[i] = cloneValue(v)
	}

	var removals []int
	var insertions []arrayInsertion
	var modifications []arrayModification

	for k, v := range d {
		if k == "_t" {
			continue
		}

		if strings.HasPrefix(k, "_") {
			leftIdx, err := strconv.Atoi(k[1:])
			if err != nil {
				return nil, fmt.Errorf("array delta key %q is not a valid left index: %w", k, ErrInvalidDelta)
			}
			arr, ok := v.([]interface{})
			if !ok || len(arr) != 3 {
				return nil, fmt.Errorf("array delta entry %q must be a delete or move encoding: %w", k, ErrInvalidDelta)
			}
			code, ok := toInt(arr[2])
			if !ok {
				return nil, fmt.Errorf("array delta entry %q has a non-integer operation code: %w", k, ErrInvalidDelta)
			}
			switch code {
			case opDelete:
				removals = append(removals, leftIdx)
			case opMove:
				newIdx, ok := toInt(arr[1])
				if !ok {
					return nil, fmt.Errorf("array delta entry %q has a non-integer destination index: %w", k, ErrInvalidDelta)
				}
				if leftIdx < 0 || leftIdx >= len(target) {
					return nil, fmt.Errorf("move source index %d out of range: %w", leftIdx, ErrInvalidDelta)
				}
				moved, err := patchValue(target[leftIdx], arr[0])
				if err != nil {
					return nil, fmt.Errorf("move from index %d: %w", leftIdx, err)
				}
				removals = append(removals, leftIdx)
				insertions = append(insertions, arrayInsertion{index: newIdx, value: moved})
			case opTextDiff:
				return nil, fmt.Errorf("text diff operation is not supported: %w", ErrUnsupportedOperation)
			default:
				return nil, fmt.Errorf("array delta entry %q has unrecognized operation code %d: %w", k, code, ErrInvalidDelta)
			}
			continue
		}

		rightIdx, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("array delta key %q is not a valid right index: %w", k, ErrInvalidDelta)
		}
		if isAddEncoding(v) {
			insertions = append(insertions, arrayInsertion{index: rightIdx, value: cloneValue(v.([]interface{})[0])})
			continue
		}
		modifications = append(modifications, arrayModification{index: rightIdx, delta: v})
	}

	sort.Sort(sort.Reverse(sort.IntSlice(removals)))
	for _, idx := range removals {
		if idx < 0 || idx >= len(target) {
			return nil, fmt.Errorf("remove index %d out of range: %w", idx, ErrInvalidDelta)
		}
		target = append(target[:idx], target[idx+1:]...)
	}

	sort.Slice(insertions, func(i, j int) bool { return insertions[i].index < insertions[j].index })
	for _, ins := range insertions {
		if ins.index < 0 || ins.index > len(target) {
			return nil, fmt.Errorf("insert index %d out of range: %w", ins.index, ErrInvalidDelta)
		}
		target = append(target, nil)
		copy(target[ins.index+1:], target[ins.index:])
		target[ins.index] = ins.value
	}

	for _, mod := range modifications {
		if mod.index < 0 || mod.index >= len(target) {
			return nil, fmt.Errorf("modify index %d out of range: %w", mod.index, ErrInvalidDelta)
		}
		patched, err := patchValue(target[mod.index], mod.delta)
		if err != nil {
			return nil, fmt.Errorf("modify index %d: %w", mod.index, err)
		}
		target[mod.index] = patched
	}

	return target, nil
}
