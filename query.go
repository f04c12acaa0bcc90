// Package bucket: the upper-bound query engine.
package bucket

import (
	"fmt"
	"sort"
)

// FindUpperBound returns the smallest index i into the backing slice such
// that the running total data[0]+…+data[i] reaches or exceeds threshold.
// This is the inverse-CDF lookup of weighted sampling: draw threshold
// uniformly in (0, Total()) and the returned index is chosen with
// probability proportional to its value.
//
// The cumulative layer must be clean (refresh after every batch of row
// updates); querying a dirty structure is a caller error and yields stale
// results. If the scan of the selected row never reaches the threshold
// (possible only when an invariant was violated), the sentinel NotFound is
// returned with a nil error.
//
// In checked mode, thresholds outside the open interval (0, Total()) are
// rejected with ErrValueOutOfRange; in unchecked mode they are undefined
// behavior.
//
// Complexity: O(log rows + cols).
func (b *Bucket[T]) FindUpperBound(threshold T) (int, error) {
	if b.checks {
		if threshold <= 0 {
			return NotFound, fmt.Errorf("%w: threshold %v is below the first element", ErrValueOutOfRange, threshold)
		}
		if threshold >= b.cumSums[b.rows] {
			return NotFound, fmt.Errorf("%w: threshold %v is at or beyond the total %v", ErrValueOutOfRange, threshold, b.cumSums[b.rows])
		}
	}

	// First cumulative entry strictly greater than the threshold; the row
	// just before it contains the answer. cumSums is non-decreasing, so the
	// predicate is monotone.
	k := sort.Search(len(b.cumSums), func(i int) bool { return b.cumSums[i] > threshold })
	if k == 0 {
		// Unreachable in checked mode (cumSums[0] == 0 < threshold).
		return NotFound, nil
	}
	row := k - 1

	idx := row * b.cols
	hi := idx + b.cols
	if n := len(b.data); hi > n {
		hi = n
	}

	running := b.cumSums[row]
	for ; idx < hi; idx++ {
		running += b.data[idx]
		if running >= threshold {
			return idx, nil
		}
	}

	return NotFound, nil
}

// IsValidIndex reports whether i is a located query result rather than the
// NotFound sentinel.
func (b *Bucket[T]) IsValidIndex(i int) bool {
	return i != NotFound
}
