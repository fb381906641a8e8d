// Package sources defines the capability contract for subscription
// sources and the registry used to construct them by name.
//
// A source is one external content service able to produce the
// authenticated user's list of followable feeds as (title, feed-URL)
// pairs. Sources are polymorphic over this single capability; the
// reconciliation engine neither knows nor cares which service the
// items came from.
package sources

import (
	"context"

	"github.com/feedtools/subsync/pkg/credentials"
	"github.com/feedtools/subsync/pkg/subscriptions"
)

// Source is a subscription source for one external content service.
//
// Login establishes session state from per-host credentials and must be
// called before Subscriptions. Implementations report login failures as
// an AuthError regardless of the underlying cause, so callers can treat
// all providers uniformly.
//
// Subscriptions returns a lazy, finite, non-restartable sequence; each
// call re-fetches from the service. Listing failures mid-stream surface
// as a SourceError terminating the sequence.
type Source interface {
	// Name returns the provider name used on the command line.
	Name() string

	// Host returns the hostname used to key credential lookup.
	Host() string

	// Login authenticates against the service.
	Login(ctx context.Context, creds credentials.Credentials) error

	// Subscriptions lists the user's followed feeds.
	Subscriptions(ctx context.Context, opts ...Option) subscriptions.Seq
}

// Options holds listing options shared by all sources.
type Options struct {
	// IncludeSelf adds a synthetic entry for the authenticated user's
	// own published feed, when the service exposes one.
	IncludeSelf bool
}

// Option configures a listing call.
type Option func(*Options)

// WithSelf includes the user's own feed in the listing.
func WithSelf() Option {
	return func(o *Options) { o.IncludeSelf = true }
}

// NewOptions applies the given options over defaults.
func NewOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
