package batch

// DefaultSize is the default number of instances per draw submission.
const DefaultSize = 10000

// Range is a contiguous run of placements [Start, Start+Len).
type Range struct {
	Start int
	Len   int
}

// End returns the exclusive end index.
func (r Range) End() int {
	return r.Start + r.Len
}

// Count returns the number of chunks needed for n items, ceil(n/size).
// It returns 0 when n or size is not positive.
func Count(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Chunks returns the ranges covering n items in chunks of at most size.
// Every chunk but the last has exactly size items.
func Chunks(n, size int) []Range {
	count := Count(n, size)
	out := make([]Range, 0, count)
	for i := 0; i < count; i++ {
		start := i * size
		out = append(out, Range{Start: start, Len: min(size, n-start)})
	}
	return out
}
