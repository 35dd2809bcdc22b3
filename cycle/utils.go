package cycle

import "encoding/binary"

// indexOfMin returns the index of the smallest element of s, or -1 when s is empty.
// Time Complexity: O(n).
func indexOfMin(s []string) int {
	if len(s) == 0 {
		return -1
	}
	m := 0
	for i := 1; i < len(s); i++ {
		if s[i] < s[m] {
			m = i
		}
	}

	return m
}

// rotate returns a new slice holding s rotated left by k positions.
func rotate(s []string, k int) []string {
	out := make([]string, 0, len(s))
	out = append(out, s[k:]...)

	return append(out, s[:k]...)
}

// reverseTail returns s with its first element fixed and the rest reversed:
// [a b c d] → [a d c b]. This is the same closed walk in the other direction.
func reverseTail(s []string) []string {
	out := make([]string, len(s))
	if len(s) == 0 {
		return out
	}
	out[0] = s[0]
	for i := 1; i < len(s); i++ {
		out[i] = s[len(s)-i]
	}

	return out
}

// compare lexicographically compares two string slices.
// Returns -1 if a < b, 0 if equal, +1 if a > b; a shorter prefix sorts first.
// Time Complexity: O(min(len(a), len(b))).
func compare(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}

// canonical maps every rotation and both directions of a simple cycle onto a
// single sequence: rotated to its minimum element, then the smaller of that
// rotation and its reversal.
func canonical(seq []string) []string {
	fwd := rotate(seq, indexOfMin(seq))
	bwd := reverseTail(fwd)
	if compare(bwd, fwd) < 0 {
		return bwd
	}

	return fwd
}

// key encodes a canonical sequence as uvarint(len(id)) ‖ id for every id.
// The length prefix keeps ["a,b","c"] and ["a","b,c"] apart.
func key(seq []string) string {
	n := 0
	for _, id := range seq {
		n += len(id) + binary.MaxVarintLen64
	}
	buf := make([]byte, 0, n)
	for _, id := range seq {
		buf = binary.AppendUvarint(buf, uint64(len(id)))
		buf = append(buf, id...)
	}

	return string(buf)
}
