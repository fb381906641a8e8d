// Package soundcloud lists the users a SoundCloud account follows as
// track feed URLs.
//
// Credentials: login is the account's permalink name, password is an
// OAuth token for the public API.
package soundcloud

import (
	"context"
	"fmt"
	"net/url"

	"github.com/feedtools/subsync/internal/sources/feedinfo"
	"github.com/feedtools/subsync/internal/transport"
	"github.com/feedtools/subsync/pkg/credentials"
	"github.com/feedtools/subsync/pkg/errors"
	"github.com/feedtools/subsync/pkg/sources"
	"github.com/feedtools/subsync/pkg/subscriptions"
)

const (
	// Name is the provider name used on the command line.
	Name = "soundcloud"

	host = "soundcloud.com"

	defaultAPIURL = "https://api.soundcloud.com"

	// feedURLFormat is the per-user tracks feed.
	feedURLFormat = "https://feeds.soundcloud.com/users/soundcloud:users:%d/sounds.rss"

	pageSize = 50
)

// user mirrors the user objects in resolve and followings responses.
type user struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Client is the SoundCloud subscription source.
type Client struct {
	transport *transport.Client
	apiURL    string

	self user
}

// New creates an unauthenticated SoundCloud source.
func New() *Client {
	return &Client{
		transport: transport.New(&transport.NoAuth{}),
		apiURL:    defaultAPIURL,
	}
}

// NewWithAPIURL creates a source against a non-default API endpoint.
func NewWithAPIURL(apiURL string) *Client {
	c := New()
	c.apiURL = apiURL
	return c
}

// Name implements sources.Source.
func (c *Client) Name() string { return Name }

// Host implements sources.Source.
func (c *Client) Host() string { return host }

// Login installs the OAuth token and resolves the account's own user id.
func (c *Client) Login(ctx context.Context, creds credentials.Credentials) error {
	if creds.Login == "" || creds.Password == "" {
		return errors.NewAuthError(host, "permalink name and OAuth token required", nil)
	}
	c.transport.SetAuth(&transport.HeaderAuth{Prefix: "OAuth ", Token: creds.Password})

	query := url.Values{"url": {"https://soundcloud.com/" + creds.Login}}
	resp, err := c.transport.Get(ctx, c.apiURL+"/resolve?"+query.Encode())
	if err != nil {
		return errors.NewAuthError(host, "resolve failed", err)
	}
	if err := transport.DecodeResponse(resp, &c.self); err != nil {
		return errors.NewAuthError(host, "resolve rejected", err)
	}
	if c.self.ID == 0 {
		return errors.NewAuthError(host, "user "+creds.Login+" not found", nil)
	}
	return nil
}

// followingsPage mirrors one page of the followings listing with linked
// partitioning enabled.
type followingsPage struct {
	Collection []user `json:"collection"`
	NextHref   string `json:"next_href"`
}

// Subscriptions lists followed users, one API page at a time.
func (c *Client) Subscriptions(ctx context.Context, opts ...sources.Option) subscriptions.Seq {
	options := sources.NewOptions(opts...)

	return func(yield func(subscriptions.Item, error) bool) {
		if options.IncludeSelf {
			selfURL := fmt.Sprintf(feedURLFormat, c.self.ID)
			self := subscriptions.Item{
				Title: feedinfo.Title(ctx, selfURL, c.self.Username),
				URL:   selfURL,
			}
			if !yield(self, nil) {
				return
			}
		}

		next := fmt.Sprintf("%s/users/%d/followings?linked_partitioning=1&limit=%d", c.apiURL, c.self.ID, pageSize)
		for next != "" {
			resp, err := c.transport.Get(ctx, next)
			if err != nil {
				yield(subscriptions.Item{}, errors.NewSourceError(Name, "listing followings", err))
				return
			}
			var page followingsPage
			if err := transport.DecodeResponse(resp, &page); err != nil {
				yield(subscriptions.Item{}, errors.NewSourceError(Name, "listing followings", err))
				return
			}

			for _, followed := range page.Collection {
				item := subscriptions.Item{
					Title: followed.Username,
					URL:   fmt.Sprintf(feedURLFormat, followed.ID),
				}
				if !yield(item, nil) {
					return
				}
			}
			next = page.NextHref
		}
	}
}
