package jsondelta

import "strconv"

// diffArray computes the jsondiffpatch-shaped array delta between left and
// right, or nil if they're deeply equal. It trims the common head and tail
// before handing the middle to the LCS engine, then assembles the delta
// object in edit/move, add, remove order. An edit pair whose left and right
// indices differ is written as a move carrying the nested delta.
func diffArray(left, right []interface{}, ctx *diffCtx, path string) (interface{}, error) {
	if deepEqual(left, right) {
		return nil, nil
	}

	if ctx.arrayMode == Simple {
		return []interface{}{cloneValue(left), cloneValue(right)}, nil
	}

	head := commonHead(left, right)
	tail := commonTail(left, right, head)

	midLeft := left[head : len(left)-tail]
	midRight := right[head : len(right)-tail]

	ad := computeLCS(midLeft, midRight, head)

	delta := map[string]interface{}{"_t": "a"}

	for _, pair := range ad.toDiff {
		valueDiff, err := diffValue(left[pair.left], right[pair.right], ctx, path)
		if err != nil {
			return nil, err
		}
		if valueDiff == nil {
			continue
		}
		if pair.left != pair.right {
			delta["_"+strconv.Itoa(pair.left)] = []interface{}{valueDiff, pair.right, opMove}
			ctx.stats.recordMove()
			continue
		}
		delta[strconv.Itoa(pair.right)] = valueDiff
		ctx.stats.recordEdit()
	}

	for _, pair := range ad.toMove {
		valueDiff, err := diffValue(left[pair.left], right[pair.right], ctx, path)
		if err != nil {
			return nil, err
		}
		nested := valueDiff
		if nested == nil {
			nested = ""
		}
		delta["_"+strconv.Itoa(pair.left)] = []interface{}{nested, pair.right, opMove}
		ctx.stats.recordMove()
	}

	for _, ri := range ad.toAdd {
		delta[strconv.Itoa(ri)] = []interface{}{cloneValue(right[ri])}
		ctx.stats.recordAdd()
	}

	for _, li := range ad.toRemove {
		delta["_"+strconv.Itoa(li)] = []interface{}{cloneValue(left[li]), 0, opDelete}
		ctx.stats.recordRemove()
	}

	return delta, nil
}

// commonHead returns the length of the longest common prefix of left and
// right, bounded by the shorter of the two.
func commonHead(left, right []interface{}) int {
	max := len(left)
	if len(right) < max {
		max = len(right)
	}
	i := 0
	for i < max && deepEqual(left[i], right[i]) {
		i++
	}
	return i
}

// commonTail returns the length of the longest common suffix of left and
// right, bounded by the shorter of the two minus the already-trimmed head.
func commonTail(left, right []interface{}, head int) int {
	max := len(left)
	if len(right) < max {
		max = len(right)
	}
	max -= head
	i := 0
	for i < max && deepEqual(left[len(left)-1-i], right[len(right)-1-i]) {
		i++
	}
	return i
}
