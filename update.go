// Package bucket: row aggregation and the cumulative layer.
//
// These methods are the only mutators of the cached rowSums/cumSums state.
// They do not change the distribution the caller sees, only its cached
// materialization, but are exported as plain mutating methods to keep the
// ownership model honest.
package bucket

import "fmt"

// UpdateRowSum recomputes the cached sum of a single row from the backing
// slice and widens the affected span to include it. Call it for every row
// that covers a mutated index, then repair the cumulative layer with
// RefreshCumSums or RebuildCumSums before querying.
//
// In checked mode an out-of-range row is rejected with
// ErrRowIndexOutOfRange before any state changes; in unchecked mode it is
// undefined behavior.
//
// Complexity: O(cols).
func (b *Bucket[T]) UpdateRowSum(row int) error {
	if b.checks && (row < 0 || row >= b.rows) {
		return fmt.Errorf("%w: row %d with %d rows", ErrRowIndexOutOfRange, row, b.rows)
	}
	b.updateRowSum(row)

	return nil
}

// UpdateAllRowSums recomputes every cached row sum. Used at construction
// and whenever mutations are not known to be localized.
//
// Complexity: O(rows·cols).
func (b *Bucket[T]) UpdateAllRowSums() {
	for row := 0; row < b.rows; row++ {
		b.updateRowSum(row)
	}
}

// updateRowSum aggregates row's slice of the backing data, clamped to its
// real length (positions beyond it count as zero), and widens the affected
// span.
func (b *Bucket[T]) updateRowSum(row int) {
	lo := row * b.cols
	hi := lo + b.cols
	if n := len(b.data); hi > n {
		hi = n
		if lo > n {
			lo = n
		}
	}

	var sum T
	for _, v := range b.data[lo:hi] {
		sum += v
	}
	b.rowSums[row] = sum

	if row < b.minRowAffected {
		b.minRowAffected = row
	}
	if row > b.maxRowAffected {
		b.maxRowAffected = row
	}
}

// RebuildCumSums recomputes the whole cumulative array from the row sums
// and marks the structure clean. Always correct regardless of prior state.
//
// Complexity: O(rows).
func (b *Bucket[T]) RebuildCumSums() {
	b.cumSums[0] = 0
	for row := 0; row < b.rows; row++ {
		b.cumSums[row+1] = b.cumSums[row] + b.rowSums[row]
	}
	b.clearAffected()
}

// RefreshCumSums repairs the cumulative array incrementally and marks the
// structure clean. The entries covering the affected span are recomputed
// from the row sums; every entry after the span only needs the same
// constant shift (the net change contributed by the affected rows), which
// avoids re-reading rowSums for the untouched tail.
//
// Caller contract: no row outside [MinRowAffected, MaxRowAffected] may have
// a stale sum; always call UpdateRowSum for every mutated row before
// refreshing. The structure cannot verify this cheaply. On a clean
// structure RefreshCumSums is a no-op.
//
// Complexity: O(rows) worst case; the tail costs one subtraction per row.
func (b *Bucket[T]) RefreshCumSums() {
	// Sentinel span (rows, 0) leaves both loops empty.
	delta := b.cumSums[b.maxRowAffected+1]

	row := b.minRowAffected
	for ; row <= b.maxRowAffected; row++ {
		b.cumSums[row+1] = b.cumSums[row] + b.rowSums[row]
	}
	delta -= b.cumSums[b.maxRowAffected+1]

	for ; row < b.rows; row++ {
		b.cumSums[row+1] -= delta
	}
	b.clearAffected()
}

// clearAffected resets the affected span to the clean sentinel (rows, 0).
func (b *Bucket[T]) clearAffected() {
	b.minRowAffected = b.rows
	b.maxRowAffected = 0
}
