// Package bucket core types and sentinel errors.
package bucket

import "errors"

// Sentinel errors returned by the bucket structure.
var (
	// ErrBadShape indicates rows or cols is not positive. Always enforced.
	ErrBadShape = errors.New("bucket: rows and cols must be positive")

	// ErrDataExceedsShape indicates the backing slice is longer than
	// rows·cols and cannot be covered by the logical grid. Always enforced,
	// independent of the checks option.
	ErrDataExceedsShape = errors.New("bucket: backing slice longer than rows*cols")

	// ErrRowIndexOutOfRange indicates an invalid row passed to UpdateRowSum.
	// Reported only in checked mode.
	ErrRowIndexOutOfRange = errors.New("bucket: row index out of range")

	// ErrValueOutOfRange indicates a FindUpperBound threshold outside the
	// open interval (0, total). Reported only in checked mode.
	ErrValueOutOfRange = errors.New("bucket: threshold out of range")
)

// NotFound is the sentinel index returned by FindUpperBound when the scan
// of the selected row never reaches the threshold. With non-negative values
// and a consistent cumulative layer this cannot happen; seeing NotFound
// means a precondition was violated (stale sums or negative values).
const NotFound = -1

// Numeric restricts element types to arithmetic scalars. The cumulative-sum
// logic is meaningless for non-numeric data, so bool, string and the complex
// types are deliberately absent from the type set. Go has no distinct
// character types (byte and rune alias uint8 and int32), so, unlike
// languages with dedicated char types, those aliases instantiate like any
// other integer.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
