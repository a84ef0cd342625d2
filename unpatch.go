package jsondelta

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Unpatch applies delta in reverse to right, recovering the left-hand
// document the delta was originally computed from. Neither right nor delta
// is mutated.
func Unpatch(right, delta interface{}) (interface{}, error) {
	return unpatchValue(right, delta)
}

func unpatchValue(right, delta interface{}) (interface{}, error) {
	if delta == nil {
		return cloneValue(right), nil
	}
	if s, ok := delta.(string); ok && s == "" {
		return cloneValue(right), nil
	}

	switch d := delta.(type) {
	case []interface{}:
		return unpatchScalar(d)
	case map[string]interface{}:
		if isArrayDelta(d) {
			arr, ok := right.([]interface{})
			if !ok {
				return nil, fmt.Errorf("array delta applied to non-array value %T: %w", right, ErrInvalidDelta)
			}
			return unpatchArray(arr, d)
		}
		return unpatchObject(right, d)
	default:
		return nil, fmt.Errorf("delta has unsupported shape %T: %w", delta, ErrInvalidDelta)
	}
}

func unpatchScalar(d []interface{}) (interface{}, error) {
	kind, a, _, err := parseScalarDelta(d)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "add":
		return nil, nil
	case "replace", "delete":
		return cloneValue(a), nil
	default:
		return nil, fmt.Errorf("move operation is not valid outside of an array delta: %w", ErrInvalidDelta)
	}
}

// unpatchObject reverses a property-wise object delta against right, cloning
// right first. An add-encoded property removes the key; a delete- or
// replace-encoded property whose key is absent from right is restored via
// unpatch(nil, v); any other property is unpatched recursively in place.
func unpatchObject(right interface{}, d map[string]interface{}) (interface{}, error) {
	target, err := cloneObjectTarget(right)
	if err != nil {
		return nil, err
	}

	for k, v := range d {
		if isAddEncoding(v) {
			delete(target, k)
			continue
		}
		existing, present := target[k]
		if !present {
			restored, err := unpatchValue(nil, v)
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", k, err)
			}
			target[k] = restored
			continue
		}
		restored, err := unpatchValue(existing, v)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", k, err)
		}
		target[k] = restored
	}
	return target, nil
}

type arrayRemoval struct {
	index int
}

// unpatchArray reverses an array delta against right, cloning right first.
// Modifications are undone first, while indices still refer to the
// right-hand (post-patch) array; then removals undo in descending index
// order and insertions undo in ascending index order, mirroring Patch's
// ordering in reverse so that deletes become inserts and adds become
// removes.
func unpatchArray(right []interface{}, d map[string]interface{}) (interface{}, error) {
	target := make([]interface{}, len(right))
	for i, v := range right {
		target[i] = cloneValue(v)
	}

	var removals []arrayRemoval
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
				insertions = append(insertions, arrayInsertion{index: leftIdx, value: cloneValue(arr[0])})
			case opMove:
				newIdx, ok := toInt(arr[1])
				if !ok {
					return nil, fmt.Errorf("array delta entry %q has a non-integer destination index: %w", k, ErrInvalidDelta)
				}
				if newIdx < 0 || newIdx >= len(target) {
					return nil, fmt.Errorf("move destination index %d out of range: %w", newIdx, ErrInvalidDelta)
				}
				restored, err := unpatchValue(target[newIdx], arr[0])
				if err != nil {
					return nil, fmt.Errorf("move to index %d: %w", newIdx, err)
				}
				removals = append(removals, arrayRemoval{index: newIdx})
				insertions = append(insertions, arrayInsertion{index: leftIdx, value: restored})
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
			removals = append(removals, arrayRemoval{index: rightIdx})
			continue
		}
		modifications = append(modifications, arrayModification{index: rightIdx, delta: v})
	}

	for _, mod := range modifications {
		if mod.index < 0 || mod.index >= len(target) {
			return nil, fmt.Errorf("modify index %d out of range: %w", mod.index, ErrInvalidDelta)
		}
		restored, err := unpatchValue(target[mod.index], mod.delta)
		if err != nil {
			return nil, fmt.Errorf("modify index %d: %w", mod.index, err)
		}
		target[mod.index] = restored
	}

	removeIdx := make([]int, len(removals))
	for i, r := range removals {
		removeIdx[i] = r.index
	}
	sort.Sort(sort.Reverse(sort.IntSlice(removeIdx)))
	for _, idx := range removeIdx {
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

	return target, nil
}
