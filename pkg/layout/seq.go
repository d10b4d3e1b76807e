package layout

// maxChunkSize is the largest slice handed to a reducer in one call by
// [ApplyWithChunking]. The value mirrors the argument-count cap of the
// call convention the original chunking guard worked around.
const maxChunkSize = 65535

// ApplyWithChunking reduces values with reduce, splitting inputs longer
// than the chunking threshold into fixed-size chunks, reducing each chunk,
// and then reducing the chunk results. For associative, order-insensitive
// reducers such as min and max the result is identical to reducing the
// whole slice directly.
func ApplyWithChunking[T any](reduce func([]T) T, values []T) T {
	if len(values) <= maxChunkSize {
		return reduce(values)
	}
	chunked := make([]T, 0, (len(values)+maxChunkSize-1)/maxChunkSize)
	for start := 0; start < len(values); start += maxChunkSize {
		end := min(start+maxChunkSize, len(values))
		chunked = append(chunked, reduce(values[start:end]))
	}
	return ApplyWithChunking(reduce, chunked)
}

// Partition splits xs into the elements satisfying pred (lhs) and the rest
// (rhs), preserving relative order in both outputs.
func Partition[T any](xs []T, pred func(T) bool) (lhs, rhs []T) {
	for _, x := range xs {
		if pred(x) {
			lhs = append(lhs, x)
		} else {
			rhs = append(rhs, x)
		}
	}
	return lhs, rhs
}

// Range returns the ascending sequence start, start+1, ..., limit-1.
// It returns an empty slice when limit <= start.
func Range(start, limit int) []int {
	return RangeStep(start, limit, 1)
}

// RangeStep returns the arithmetic sequence from start advancing by step:
// ascending with an exclusive upper bound when step > 0, descending with an
// exclusive lower bound when step < 0. A zero step yields an empty slice.
func RangeStep(start, limit, step int) []int {
	var out []int
	switch {
	case step > 0:
		for v := start; v < limit; v += step {
			out = append(out, v)
		}
	case step < 0:
		for v := start; v > limit; v += step {
			out = append(out, v)
		}
	}
	return out
}

// Pick returns a new map holding only the listed keys that are present in m.
func Pick[K comparable, V any](m map[K]V, keys []K) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// MapValues returns a new map with the same keys as m and values produced
// by f.
func MapValues[K comparable, V, R any](m map[K]V, f func(V) R) map[K]R {
	out := make(map[K]R, len(m))
	for k, v := range m {
		out[k] = f(v)
	}
	return out
}

// ZipObject pairs keys with values positionally. Extra keys map to the zero
// value; extra values are ignored.
func ZipObject[K comparable, V any](keys []K, values []V) map[K]V {
	out := make(map[K]V, len(keys))
	for i, k := range keys {
		var v V
		if i < len(values) {
			v = values[i]
		}
		out[k] = v
	}
	return out
}
