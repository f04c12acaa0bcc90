package prefixsum

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// NotFound is the sentinel index returned by FindUpperBound when no prefix
// reaches the threshold.
const NotFound = -1

// Array maintains an inclusive prefix-sum array over a borrowed slice.
// prefix[i] = data[0] + … + data[i]. The slice is not copied; after
// mutating it, call Rebuild before querying. Values are assumed
// non-negative, as in bucket.
type Array struct {
	data   []float64
	prefix []float64
}

// New builds an Array over data and materializes its prefix sums.
// data is borrowed under the same lifetime contract as bucket.New.
func New(data []float64) *Array {
	a := &Array{
		data:   data,
		prefix: make([]float64, len(data)),
	}
	a.Rebuild()

	return a
}

// Rebuild recomputes the whole prefix array from the backing slice. O(N).
func (a *Array) Rebuild() {
	floats.CumSum(a.prefix, a.data)
}

// Total returns the sum of all values as of the last Rebuild.
func (a *Array) Total() float64 {
	if len(a.prefix) == 0 {
		return 0
	}

	return a.prefix[len(a.prefix)-1]
}

// FindUpperBound returns the smallest index whose inclusive prefix sum
// reaches or exceeds threshold, or NotFound when even the total falls
// short. O(log N).
func (a *Array) FindUpperBound(threshold float64) int {
	i := sort.SearchFloat64s(a.prefix, threshold)
	if i == len(a.prefix) {
		return NotFound
	}

	return i
}
