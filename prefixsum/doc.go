// Package prefixsum is the flat, fully materialized prefix-sum baseline for
// the bucket structure.
//
// What:
//
//   - Array keeps an inclusive prefix-sum array over a borrowed []float64
//     and answers the same upper-bound query as bucket.FindUpperBound.
//   - Any mutation of the backing slice requires a full Rebuild: O(N) per
//     change versus bucket's O(rows+cols).
//
// Why:
//
//   - It is the reference implementation the bucket benchmarks and
//     cross-check tests compare against: simplest possible semantics, no
//     incremental state to get wrong.
//   - O(log N) queries on static data; use it when the data never (or
//     rarely) changes.
//
// Complexity:
//
//   - Rebuild:        O(N)
//   - FindUpperBound: O(log N)
package prefixsum
