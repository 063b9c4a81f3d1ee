package batch

// Partition splits identifiers into contiguous batches of at most size
// elements, in the original order, non-overlapping, covering the whole
// input exactly once with the first batch starting at offset 0.
func Partition(identifiers []string, size int) [][]string {
	if size < 1 || len(identifiers) == 0 {
		return nil
	}

	batches := make([][]string, 0, (len(identifiers)+size-1)/size)

	for start := 0; start < len(identifiers); start += size {
		end := start + size

		if end > len(identifiers) {
			end = len(identifiers)
		}

		batches = append(batches, identifiers[start:end])
	}

	return batches
}
