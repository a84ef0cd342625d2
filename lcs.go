package jsondelta

import "sort"

// indexPair is a (leftIndex, rightIndex) pairing produced by the LCS engine.
type indexPair struct {
	left, right int
}

// arrayDiff is the classified output of the LCS engine: the longest common
// subsequence itself plus the leftover indices sorted into removes, adds,
// moves, and positional edits.
type arrayDiff struct {
	lcs      []indexPair
	toRemove []int
	toAdd    []int
	toMove   []indexPair
	toDiff   []indexPair
}

// computeLCS computes the longest common subsequence of left and right
// under deep equality and classifies every leftover index into a remove,
// an add, a move, or an in-place edit.
//
// The algorithm:
//  1. If either side is empty, every index on the other side is an add or
//     a remove — no LCS is possible.
//  2. Build the m×n deep-equality matrix E.
//  3. Fill the standard LCS length matrix M.
//  4. Backtrack from (m-1, n-1) iteratively (never recursing on sequence
//     length, so arbitrarily large arrays can't blow the call stack).
//     At each step, a match records an LCS pair and decrements both
//     indices; otherwise the index on the axis with the larger LCS length
//     is discarded, with ties going to the right side: when
//     M[i][j+1] > M[i+1][j] the left index is discarded, otherwise the
//     right index is discarded.
//  5. Among indices left unmatched by the LCS, walk the left leftovers in
//     ascending order and pair each with the first still-unused right
//     leftover it is deeply equal to — these become moves.
//  6. Whatever remains unpaired is zipped by ascending index into edit
//     pairs; anything left over after the zip is a pure remove or add.
//
// Every emitted index is rebased by headOffset, so callers can use the
// result directly against their original, untrimmed arrays.
func computeLCS(left, right []interface{}, headOffset int) *arrayDiff {
	m, n := len(left), len(right)
	ad := &arrayDiff{}

	if m == 0 || n == 0 {
		for i := 0; i < m; i++ {
			ad.toRemove = append(ad.toRemove, i+headOffset)
		}
		for j := 0; j < n; j++ {
			ad.toAdd = append(ad.toAdd, j+headOffset)
		}
		return ad
	}

	e := buildEqualityMatrix(left, right)

	mtx := make([][]int, m+1)
	for i := range mtx {
		mtx[i] = make([]int, n+1)
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			switch {
			case e[i][j]:
				mtx[i+1][j+1] = mtx[i][j] + 1
			case mtx[i][j+1] >= mtx[i+1][j]:
				mtx[i+1][j+1] = mtx[i][j+1]
			default:
				mtx[i+1][j+1] = mtx[i+1][j]
			}
		}
	}

	leftMatched := make([]bool, m)
	rightMatched := make([]bool, n)
	var lcsPairs []indexPair

	i, j := m-1, n-1
	for i >= 0 && j >= 0 {
		if e[i][j] {
			lcsPairs = append(lcsPairs, indexPair{left: i, right: j})
			leftMatched[i] = true
			rightMatched[j] = true
			i--
			j--
			continue
		}
		if mtx[i][j+1] > mtx[i+1][j] {
			i--
		} else {
			j--
		}
	}
	for a, b := 0, len(lcsPairs)-1; a < b; a, b = a+1, b-1 {
		lcsPairs[a], lcsPairs[b] = lcsPairs[b], lcsPairs[a]
	}
	ad.lcs = make([]indexPair, len(lcsPairs))
	for k, p := range lcsPairs {
		ad.lcs[k] = indexPair{left: p.left + headOffset, right: p.right + headOffset}
	}

	var leftLeftover, rightLeftover []int
	for idx := 0; idx < m; idx++ {
		if !leftMatched[idx] {
			leftLeftover = append(leftLeftover, idx)
		}
	}
	for idx := 0; idx < n; idx++ {
		if !rightMatched[idx] {
			rightLeftover = append(rightLeftover, idx)
		}
	}

	rightUsed := make([]bool, len(rightLeftover))
	var remainingLeft []int
	for _, li := range leftLeftover {
		found := -1
		for ri, rj := range rightLeftover {
			if rightUsed[ri] {
				continue
			}
			if e[li][rj] {
				found = ri
				break
			}
		}
		if found >= 0 {
			ad.toMove = append(ad.toMove, indexPair{left: li + headOffset, right: rightLeftover[found] + headOffset})
			rightUsed[found] = true
		} else {
			remainingLeft = append(remainingLeft, li)
		}
	}
	var remainingRight []int
	for ri, rj := range rightLeftover {
		if !rightUsed[ri] {
			remainingRight = append(remainingRight, rj)
		}
	}

	k := 0
	for k < len(remainingLeft) && k < len(remainingRight) {
		ad.toDiff = append(ad.toDiff, indexPair{left: remainingLeft[k] + headOffset, right: remainingRight[k] + headOffset})
		k++
	}
	for ; k < len(remainingLeft); k++ {
		ad.toRemove = append(ad.toRemove, remainingLeft[k]+headOffset)
	}
	for ; k < len(remainingRight); k++ {
		ad.toAdd = append(ad.toAdd, remainingRight[k]+headOffset)
	}

	sort.Ints(ad.toRemove)
	sort.Ints(ad.toAdd)

	return ad
}
