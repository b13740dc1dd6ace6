package automaton

import "slices"

// normalizeAlphabet returns a sorted copy of symbols with duplicates removed.
func normalizeAlphabet(symbols []int) []int {
	alphabet := slices.Clone(symbols)
	slices.Sort(alphabet)
	return slices.Compact(alphabet)
}

// mergeAlphabets returns the sorted union of two normalized alphabets.
func mergeAlphabets(a, b []int) []int {
	merged := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			merged = append(merged, a[i])
			i++
		case a[i] > b[j]:
			merged = append(merged, b[j])
			j++
		default:
			merged = append(merged, a[i])
			i++
			j++
		}
	}
	merged = append(merged, a[i:]...)
	return append(merged, b[j:]...)
}

// columnOf returns the position of symbol in a normalized alphabet, or -1.
func columnOf(alphabet []int, symbol int) int {
	if i, ok := slices.BinarySearch(alphabet, symbol); ok {
		return i
	}
	return -1
}

// columnsIn maps every symbol of merged to its column in alphabet (-1 when foreign).
func columnsIn(merged, alphabet []int) []int {
	columns := make([]int, len(merged))
	for k, symbol := range merged {
		columns[k] = columnOf(alphabet, symbol)
	}
	return columns
}
