package bucket

import "fmt"

// Bucket is a two-level partial-sum view over a borrowed numeric slice.
//
// The slice is split into rows logical rows of cols elements each; row r
// covers data[r*cols : (r+1)*cols], clamped to len(data) with implicit
// zeros beyond it. rowSums caches each row's total and cumSums the prefix
// sums over rowSums (cumSums[0] is pinned to 0, cumSums[rows] is the grand
// total). minRowAffected/maxRowAffected track which rowSums entries changed
// since the cumulative layer was last repaired; the clean state is encoded
// as (rows, 0).
type Bucket[T Numeric] struct {
	rows, cols int
	size       int // rows*cols, the padded logical length
	data       []T

	rowSums []T
	cumSums []T

	minRowAffected int
	maxRowAffected int

	checks bool
}

// New builds a Bucket over data with a rows×cols logical shape and brings
// it into a clean, queryable state (full row aggregation plus a full
// cumulative pass).
//
// data is borrowed, never copied: the caller keeps ownership, must keep the
// slice alive and must not relocate it (no append that reallocates, no
// re-slicing to a different array) while the Bucket is in use. Values are
// assumed non-negative; this is not validated, but FindUpperBound is only
// meaningful under that assumption.
//
// len(data) may be smaller than rows*cols (the missing tail counts as
// zeros) but never larger. Shape preconditions are enforced regardless of
// the checks option.
func New[T Numeric](rows, cols int, data []T, opts ...Option) (*Bucket[T], error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got rows=%d, cols=%d", ErrBadShape, rows, cols)
	}
	if len(data) > rows*cols {
		return nil, fmt.Errorf("%w: len(data)=%d, shape %d×%d holds %d", ErrDataExceedsShape, len(data), rows, cols, rows*cols)
	}

	o := gatherOptions(opts...)
	b := &Bucket[T]{
		rows:    rows,
		cols:    cols,
		size:    rows * cols,
		data:    data,
		rowSums: make([]T, rows),
		cumSums: make([]T, rows+1),
		checks:  o.checks,
	}
	b.UpdateAllRowSums()
	b.RebuildCumSums()

	return b, nil
}

// Rows returns the number of logical rows.
func (b *Bucket[T]) Rows() int { return b.rows }

// Cols returns the number of elements per logical row.
func (b *Bucket[T]) Cols() int { return b.cols }

// Size returns rows·cols, the padded logical length. Not to be confused
// with the length of the backing slice, which may be smaller.
func (b *Bucket[T]) Size() int { return b.size }

// Total returns the grand total of the (zero-padded) backing slice as of
// the last cumulative refresh.
func (b *Bucket[T]) Total() T { return b.cumSums[b.rows] }

// MinRowAffected returns the first row whose sum changed since the last
// cumulative refresh. On a clean structure it holds the sentinel Rows().
func (b *Bucket[T]) MinRowAffected() int { return b.minRowAffected }

// MaxRowAffected returns the last row whose sum changed since the last
// cumulative refresh. On a clean structure it holds the sentinel 0.
func (b *Bucket[T]) MaxRowAffected() int { return b.maxRowAffected }

// RowSums returns a snapshot copy of the per-row sums.
func (b *Bucket[T]) RowSums() []T {
	out := make([]T, len(b.rowSums))
	copy(out, b.rowSums)
	return out
}

// CumSums returns a snapshot copy of the cumulative row sums
// (length Rows()+1, first entry always 0).
func (b *Bucket[T]) CumSums() []T {
	out := make([]T, len(b.cumSums))
	copy(out, b.cumSums)
	return out
}

// String renders a diagnostic dump of the cumulative sums.
func (b *Bucket[T]) String() string {
	return fmt.Sprintf("bucket(%d×%d)%v", b.rows, b.cols, b.cumSums)
}
