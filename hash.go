package jsondelta

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math"
	"sort"
)

// newHash returns the hash implementation used to accelerate equality
// checks inside the LCS engine. It is an unexported package-level var,
// mirroring qri-io/deepdiff's swappable NewHash, so only code inside this
// package can replace it.
var newHash = func() hash.Hash64 {
	return fnv.New64()
}

// canonicalHash returns a content hash of v such that deepEqual(a, b)
// implies canonicalHash(a) == canonicalHash(b). The LCS engine uses it to
// reject unequal elements in O(1) per matrix cell instead of paying for a
// full recursive deepEqual on every comparison; a hash match is always
// confirmed with deepEqual before being trusted, so a hash collision can
// only cost performance, never correctness.
func canonicalHash(v interface{}) uint64 {
	h := newHash()
	writeHash(h, v)
	return h.Sum64()
}

func writeHash(h hash.Hash64, v interface{}) {
	switch x := v.(type) {
	case nil:
		h.Write([]byte{0})
	case bool:
		if x {
			h.Write([]byte{1, 1})
		} else {
			h.Write([]byte{1, 0})
		}
	case float64:
		h.Write([]byte{2})
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(x))
		h.Write(buf[:])
	case int:
		h.Write([]byte{2})
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(float64(x)))
		h.Write(buf[:])
	case string:
		h.Write([]byte{3})
		h.Write([]byte(x))
	case []interface{}:
		h.Write([]byte{4})
		for _, el := range x {
			writeHash(h, el)
		}
	case map[string]interface{}:
		h.Write([]byte{5})
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			h.Write([]byte(k))
			writeHash(h, x[k])
		}
	default:
		h.Write([]byte{6})
	}
}

// buildEqualityMatrix computes E[i][j] = deepEqual(left[i], right[j]) for
// every pair, using canonicalHash as a fast pre-filter.
func buildEqualityMatrix(left, right []interface{}) [][]bool {
	m, n := len(left), len(right)
	rightHashes := make([]uint64, n)
	for j, v := range right {
		rightHashes[j] = canonicalHash(v)
	}

	e := make([][]bool, m)
	for i, lv := range left {
		lh := canonicalHash(lv)
		row := make([]bool, n)
		for j, rv := range right {
			if lh == rightHashes[j] && deepEqual(lv, rv) {
				row[j] = true
			}
		}
		e[i] = row
	}
	return e
}
