package catalog

import (
	"errors"
	"fmt"
)

// ErrEmptyOfferSet is returned when aggregation is called with zero
// offers. A product with no stocking pharmacy must be filtered out
// before reaching the aggregator; this is a programmer error, not a
// recoverable condition.
var ErrEmptyOfferSet = errors.New("catalog: empty offer set")

// InvalidSortKeyError reports a request for a comparator the sort
// engine does not know. Surfaced to the caller as a configuration
// error rather than swallowed.
type InvalidSortKeyError struct {
	Key SortKey
}

func (e *InvalidSortKeyError) Error() string {
	return fmt.Sprintf("catalog: unknown sort key %q", string(e.Key))
}
