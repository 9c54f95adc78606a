package utils

// PrefetchWindow returns the half-open index range [start, end) of the items that follow
// lastVisibleIndex, at most count of them, clipped to a list of the given length.
// end == start means there is nothing to prefetch. Any int is accepted for each argument;
// the arithmetic never overflows.
func PrefetchWindow(length, lastVisibleIndex, count int) (start, end int) {
	if length <= 0 {
		return 0, 0
	}
	if lastVisibleIndex >= length-1 {
		return length, length
	}

	// lastVisibleIndex < length-1 from here on, so first cannot overflow
	first := lastVisibleIndex + 1
	if count <= 0 {
		if first < 0 {
			first = 0
		}
		return first, first
	}

	if first < 0 {
		// the slots before index 0 use up part of count
		if count <= -first {
			return 0, 0
		}
		count += first
		first = 0
	}

	end = length
	if count < length-first {
		end = first + count
	}
	return first, end
}
