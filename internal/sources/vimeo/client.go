// Package vimeo lists the channels and users a Vimeo account follows
// as video feed URLs.
//
// Credentials: login is the account's username, password is a personal
// access token with the "private" scope.
package vimeo

import (
	"context"
	"strconv"
	"strings"

	"github.com/feedtools/subsync/internal/sources/feedinfo"
	"github.com/feedtools/subsync/internal/transport"
	"github.com/feedtools/subsync/pkg/credentials"
	"github.com/feedtools/subsync/pkg/errors"
	"github.com/feedtools/subsync/pkg/sources"
	"github.com/feedtools/subsync/pkg/subscriptions"
)

const (
	// Name is the provider name used on the command line.
	Name = "vimeo"

	host = "vimeo.com"

	defaultAPIURL = "https://api.vimeo.com"

	feedURLPrefix = "https://vimeo.com"
	feedURLSuffix = "/videos/rss"

	pageSize = 50
)

// Client is the Vimeo subscription source.
type Client struct {
	transport *transport.Client
	apiURL    string

	userPath string // e.g. /users/12345
	username string
}

// New creates an unauthenticated Vimeo source.
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

// me mirrors the /me response.
type me struct {
	URI  string `json:"uri"`
	Name string `json:"name"`
	Link string `json:"link"`
}

// Login installs the bearer token and resolves the account's own user.
func (c *Client) Login(ctx context.Context, creds credentials.Credentials) error {
	if creds.Password == "" {
		return errors.NewAuthError(host, "access token required", nil)
	}
	c.transport.SetAuth(&transport.HeaderAuth{Prefix: "Bearer ", Token: creds.Password})

	resp, err := c.transport.Get(ctx, c.apiURL+"/me")
	if err != nil {
		return errors.NewAuthError(host, "login request failed", err)
	}
	var self me
	if err := transport.DecodeResponse(resp, &self); err != nil {
		return errors.NewAuthError(host, "token rejected", err)
	}
	if self.URI == "" {
		return errors.NewAuthError(host, "empty user in /me response", nil)
	}

	c.userPath = self.URI
	c.username = self.Name
	if creds.Login != "" {
		c.username = creds.Login
	}
	return nil
}

// followingPage mirrors one page of the following listing.
type followingPage struct {
	Data []struct {
		Name string `json:"name"`
		Link string `json:"link"`
	} `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
}

// Subscriptions lists followed users, one API page at a time.
func (c *Client) Subscriptions(ctx context.Context, opts ...sources.Option) subscriptions.Seq {
	options := sources.NewOptions(opts...)

	return func(yield func(subscriptions.Item, error) bool) {
		if options.IncludeSelf {
			selfURL := feedURLPrefix + "/" + c.username + feedURLSuffix
			self := subscriptions.Item{
				Title: feedinfo.Title(ctx, selfURL, c.username),
				URL:   selfURL,
			}
			if !yield(self, nil) {
				return
			}
		}

		next := c.userPath + "/following?per_page=" + strconv.Itoa(pageSize)
		for next != "" {
			resp, err := c.transport.Get(ctx, c.apiURL+next)
			if err != nil {
				yield(subscriptions.Item{}, errors.NewSourceError(Name, "listing following", err))
				return
			}
			var page followingPage
			if err := transport.DecodeResponse(resp, &page); err != nil {
				yield(subscriptions.Item{}, errors.NewSourceError(Name, "listing following", err))
				return
			}

			for _, followed := range page.Data {
				item := subscriptions.Item{
					Title: followed.Name,
					URL:   feedURL(followed.Link),
				}
				if !yield(item, nil) {
					return
				}
			}
			next = page.Paging.Next
		}
	}
}

// feedURL derives the public videos feed from a profile link.
func feedURL(profileLink string) string {
	return strings.TrimRight(profileLink, "/") + feedURLSuffix
}
