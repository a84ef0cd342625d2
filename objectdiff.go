package jsondelta

// diffObject computes the property-wise delta between two objects, or nil
// if the delta has no entries. Keys present on both sides recurse; keys
// present only on the left become delete encodings (unless
// IgnoreMissingProperties is set); keys present only on the right become
// add encodings (unless IgnoreNewProperties is set). Excluded paths are
// skipped entirely, on either side.
func diffObject(left, right map[string]interface{}, ctx *diffCtx, path string) (interface{}, error) {
	delta := map[string]interface{}{}

	for k, lv := range left {
		childPath := joinPath(path, k)
		if ctx.excl.contains(childPath) {
			continue
		}
		rv, ok := right[k]
		if ok {
			valueDiff, err := diffValue(lv, rv, ctx, childPath)
			if err != nil {
				return nil, err
			}
			if valueDiff != nil {
				delta[k] = valueDiff
				ctx.stats.recordEdit()
			}
			continue
		}
		if ctx.behaviors.has(IgnoreMissingProperties) {
			continue
		}
		delta[k] = []interface{}{cloneValue(lv), 0, opDelete}
		ctx.stats.recordRemove()
	}

	for k, rv := range right {
		if _, ok := left[k]; ok {
			continue
		}
		childPath := joinPath(path, k)
		if ctx.excl.contains(childPath) {
			continue
		}
		if ctx.behaviors.has(IgnoreNewProperties) {
			continue
		}
		delta[k] = []interface{}{cloneValue(rv)}
		ctx.stats.recordAdd()
	}

	if len(delta) == 0 {
		return nil, nil
	}
	return delta, nil
}
