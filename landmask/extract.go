package landmask

// ClassPredicate reports whether a categorical cell value belongs to a class
// of interest.
type ClassPredicate func(uint16) bool

// Is matches a single class value.
func Is(value uint16) ClassPredicate {
	return func(v uint16) bool { return v == value }
}

// In matches any of the given class values.
func In(values ...uint16) ClassPredicate {
	return func(v uint16) bool {
		for _, want := range values {
			if v == want {
				return true
			}
		}
		return false
	}
}

// ExtractIndicator maps a categorical layer to a 0/1 indicator layer on the
// same grid: 1 where the predicate holds, 0 elsewhere.
func ExtractIndicator(src *RasterLayer, pred ClassPredicate) *RasterLayer {
	out := NewLayer(src.Grid, 0)
	for i, v := range src.Data {
		if pred(v) {
			out.Data[i] = 1
		}
	}
	return out
}
