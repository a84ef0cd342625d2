package jsondelta

// Diff computes the delta that transforms left into right, or nil if they
// are already deeply equal. The returned delta is itself a valid JSON
// value, shaped per the jsondiffpatch convention: object deltas are
// property-wise maps, array deltas carry "_t":"a" with index-keyed
// add/remove/move/modify entries, and any other mismatch is a two-element
// [left, right] replace.
//
// Diff never mutates left or right, and the returned delta shares no
// structure with either input.
func Diff(left, right interface{}, opts ...DiffOption) (interface{}, error) {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	ctx := &diffCtx{
		behaviors: o.DiffBehaviors,
		arrayMode: o.ArrayDiffMode,
		excl:      newExcludeSet(o.ExcludePaths),
		stats:     o.Stats,
	}
	return diffValue(coerceNull(left), coerceNull(right), ctx, "")
}

// coerceNull substitutes the empty-string scalar for a nil value. This
// replicates jsondiffpatch's own null-coercion behavior so that, for
// example, diff(nil, map[string]interface{}{}) yields ["", {}] rather than
// panicking or treating nil as a fifth top-level JSON type.
func coerceNull(v interface{}) interface{} {
	if v == nil {
		return ""
	}
	return v
}

// diffValue is the top-level dispatch: object vs object and array vs array
// recurse into their respective differs; everything else is either
// identical (nil delta) or a whole-value replace.
func diffValue(left, right interface{}, ctx *diffCtx, path string) (interface{}, error) {
	left = coerceNull(left)
	right = coerceNull(right)

	if lm, ok := left.(map[string]interface{}); ok {
		if rm, ok := right.(map[string]interface{}); ok {
			return diffObject(lm, rm, ctx, path)
		}
	}
	if la, ok := left.([]interface{}); ok {
		if ra, ok := right.([]interface{}); ok {
			return diffArray(la, ra, ctx, path)
		}
	}

	if deepEqual(left, right) {
		return nil, nil
	}
	return []interface{}{cloneValue(left), cloneValue(right)}, nil
}
