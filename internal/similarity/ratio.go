// Package similarity scores how close two strings are for fuzzy matching.
// The score is a sequence-alignment ratio in [0, 1]: the total length of
// the longest matching blocks between the two strings, doubled and divided
// by the combined length. 1.0 means case-insensitively identical, 0.0 means
// no characters in common.
package similarity

import "strings"

// Ratio returns the alignment similarity of a and b over case-folded runes.
// It is symmetric and deterministic, with no side effects. Cost is
// O(len(a)·len(b)); fine for names and codes, callers should guard against
// feeding very large free-text blobs in a hot loop.
func Ratio(a, b string) float64 {
	ar := []rune(strings.ToLower(a))
	br := []rune(strings.ToLower(b))

	if len(ar) == 0 && len(br) == 0 {
		return 1.0
	}
	if len(ar) == 0 || len(br) == 0 {
		return 0.0
	}

	matched := totalMatchedRunes(ar, br)
	return 2.0 * float64(matched) / float64(len(ar)+len(br))
}

// segment is an unexplored (a, b) sub-range pending block matching.
type segment struct {
	alo, ahi, blo, bhi int
}

// totalMatchedRunes sums the sizes of all matching blocks found by
// repeatedly taking the longest common block and recursing on the pieces
// to its left and right.
func totalMatchedRunes(a, b []rune) int {
	// Index positions of every rune in b for the inner loop.
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	total := 0
	stack := []segment{{0, len(a), 0, len(b)}}
	for len(stack) > 0 {
		seg := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		i, j, size := longestMatch(a, seg, b2j)
		if size == 0 {
			continue
		}
		total += size
		stack = append(stack,
			segment{seg.alo, i, seg.blo, j},
			segment{i + size, seg.ahi, j + size, seg.bhi},
		)
	}
	return total
}

// longestMatch finds the longest matching block of a[alo:ahi] within
// b[blo:bhi]. When several blocks tie in length, the earliest in a (then
// earliest in b) wins, which keeps the ratio deterministic.
func longestMatch(a []rune, seg segment, b2j map[rune][]int) (besti, bestj, bestsize int) {
	besti, bestj = seg.alo, seg.blo

	// j2len[j] = length of the match ending at a[i-1], b[j].
	j2len := make(map[int]int)
	for i := seg.alo; i < seg.ahi; i++ {
		next := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < seg.blo {
				continue
			}
			if j >= seg.bhi {
				break
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = next
	}
	return besti, bestj, bestsize
}
