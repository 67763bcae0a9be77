// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ads

// Partition splits terms into consecutive, non-overlapping batches of at
// most max entries, covering the input exactly once in order. The split is
// deterministic: the same input always yields the same batches in the same
// order, so a failed batch can be retried individually. A max of zero or
// less yields a single batch.
func Partition(terms []string, max int) [][]string {
	if len(terms) == 0 {
		return nil
	}
	if max <= 0 {
		return [][]string{terms}
	}

	batches := make([][]string, 0, (len(terms)+max-1)/max)
	for start := 0; start < len(terms); start += max {
		end := start + max
		if end > len(terms) {
			end = len(terms)
		}
		batches = append(batches, terms[start:end])
	}
	return batches
}
