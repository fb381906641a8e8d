// Package feedinfo resolves display metadata for feed URLs.
package feedinfo

import (
	"context"

	"github.com/mmcdole/gofeed"

	"github.com/feedtools/subsync/pkg/logging"
)

// Title fetches feedURL and returns its declared title. Providers use
// it to label the synthetic self-feed entry, whose display name the
// service APIs do not expose alongside the feed URL. On any failure the
// fallback title is returned; a missing title must never break a
// listing.
func Title(ctx context.Context, feedURL, fallback string) string {
	parser := gofeed.NewParser()
	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil || feed.Title == "" {
		logging.Debug().Str("feed", feedURL).Err(err).Msg("could not resolve feed title, using fallback")
		return fallback
	}
	return feed.Title
}
