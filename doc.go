// Package bucket maintains a two-level partial-sum structure over a flat
// numeric slice, built for weighted (inverse-CDF) sampling loops where only
// a few, spatially local values change between lookups.
//
// What:
//
//   - Bucket partitions a borrowed []T into ROWS logical rows of COLS
//     elements (the slice may be shorter; missing positions count as zero).
//   - Per-row sums and a cumulative array over them are cached, so that
//     "where does the running total first reach q?" costs one binary search
//     across rows plus one scan inside a single row.
//   - After a local change, only the touched rows and the cumulative tail
//     are repaired; there is no full O(N) prefix recomputation.
//
// Why:
//
//   - Kinetic Monte-Carlo / SSA inner loops: pick the firing channel from a
//     propensity table that mutates a handful of entries per step.
//   - Fitness-proportionate selection with an evolving population.
//   - Any workload dominated by "mutate a few values, then sample by weight",
//     where a per-step O(N) prefix sum is the bottleneck.
//
// Protocol (the caller drives the cycle):
//
//	data[i] = v                     // 1. mutate the backing slice
//	b.UpdateRowSum(i / cols)        // 2. re-aggregate each affected row
//	b.RefreshCumSums()              // 3. repair the cumulative layer
//	idx, err := b.FindUpperBound(q) // 4. query
//
// Complexity (ROWS·COLS ≈ N, COLS ≈ √N is the sweet spot):
//
//   - UpdateRowSum:    O(COLS)
//   - RefreshCumSums:  O(ROWS) worst case, but the untouched tail costs one
//     subtraction per row instead of a re-read of the row sums.
//   - RebuildCumSums:  O(ROWS)
//   - FindUpperBound:  O(log ROWS + COLS)
//
// Options:
//
//   - WithChecks (default): UpdateRowSum and FindUpperBound validate their
//     preconditions and fail with sentinel errors before touching state.
//   - WithoutChecks: validation is skipped; violating a precondition is
//     undefined behavior. Decided once at construction, never per call.
//
// Errors:
//
//   - ErrBadShape: rows or cols is not positive (always enforced).
//   - ErrDataExceedsShape: backing slice longer than rows·cols (always enforced).
//   - ErrRowIndexOutOfRange: UpdateRowSum row index invalid (checked mode).
//   - ErrValueOutOfRange: FindUpperBound threshold outside (0, total) (checked mode).
//
// The structure is not safe for concurrent use; see New for the borrowing
// contract on the backing slice. For the O(N)-per-change flat baseline used
// in benchmarks, see the prefixsum subpackage.
package bucket
