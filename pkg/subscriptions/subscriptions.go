// Package subscriptions defines the entities exchanged between
// subscription sources, the aggregator client, and the reconciliation
// engine.
package subscriptions

import "iter"

// Item is a single feed exposed by a subscription source: a display
// title and the URL of the feed itself. The URL doubles as the feed
// identifier within the aggregator once its stream prefix is stripped,
// so sources must emit canonical feed URLs.
type Item struct {
	Title string
	URL   string
}

// Subscription is one entry in the aggregator's subscription list.
type Subscription struct {
	// ID is the opaque feed identifier within the aggregator's
	// namespace, stable across runs. Used as the diff key.
	ID string

	// Title is the stored display name. Not part of identity; it may
	// legitimately differ from the source's current title.
	Title string

	// Label is the optional folder/category the subscription lives in.
	Label string
}

// Seq is a lazy, finite, non-restartable sequence of items produced by
// a source. Listing performs network calls per batch, so consumers must
// drain the sequence once, during a single reconciliation pass, and
// must not attempt to resume it. A non-nil error terminates the
// sequence; no item yielded alongside an error is valid.
type Seq = iter.Seq2[Item, error]

// Collect drains a sequence into a slice, stopping at the first error.
func Collect(seq Seq) ([]Item, error) {
	var items []Item
	for item, err := range seq {
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// FromSlice wraps a fixed slice as a Seq. Used by tests and by sources
// that materialize their listing in one call.
func FromSlice(items []Item) Seq {
	return func(yield func(Item, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	}
}

// Fail returns a Seq that yields the given items and then the error,
// modeling a listing that breaks mid-stream.
func Fail(err error, items ...Item) Seq {
	return func(yield func(Item, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
		yield(Item{}, err)
	}
}
