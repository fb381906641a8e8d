// Package youtube lists a YouTube account's channel subscriptions as
// feed URLs via the YouTube Data API v3.
//
// Credentials: login is the account's channel id, password is a Data
// API key with the subscriptions.list scope readable for that channel.
package youtube

import (
	"context"
	"fmt"
	"net/url"

	"github.com/feedtools/subsync/internal/transport"
	"github.com/feedtools/subsync/pkg/credentials"
	"github.com/feedtools/subsync/pkg/errors"
	"github.com/feedtools/subsync/pkg/sources"
	"github.com/feedtools/subsync/pkg/subscriptions"
)

const (
	// Name is the provider name used on the command line.
	Name = "youtube"

	host = "youtube.com"

	defaultAPIURL = "https://www.googleapis.com/youtube/v3"

	// feedURLFormat is the per-channel uploads feed.
	feedURLFormat = "https://www.youtube.com/feeds/videos.xml?channel_id=%s"

	pageSize = 50
)

// Client is the YouTube subscription source.
type Client struct {
	transport *transport.Client
	apiURL    string

	channelID    string
	channelTitle string
}

// New creates an unauthenticated YouTube source.
func New() *Client {
	return &Client{
		transport: transport.New(&transport.NoAuth{}),
		apiURL:    defaultAPIURL,
	}
}

// NewWithAPIURL creates a source against a non-default API endpoint.
// Tests point this at a local server.
func NewWithAPIURL(apiURL string) *Client {
	c := New()
	c.apiURL = apiURL
	return c
}

// Name implements sources.Source.
func (c *Client) Name() string { return Name }

// Host implements sources.Source.
func (c *Client) Host() string { return host }

// channelList mirrors the channels.list response.
type channelList struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
	} `json:"items"`
}

// Login installs the API key on the transport and verifies it by
// looking up the account's own channel.
func (c *Client) Login(ctx context.Context, creds credentials.Credentials) error {
	if creds.Login == "" || creds.Password == "" {
		return errors.NewAuthError(host, "channel id and API key required", nil)
	}
	c.channelID = creds.Login
	c.transport.SetAuth(&transport.QueryAuth{Param: "key", Token: creds.Password})

	query := url.Values{"part": {"snippet"}, "id": {c.channelID}}
	resp, err := c.transport.Get(ctx, c.apiURL+"/channels?"+query.Encode())
	if err != nil {
		return errors.NewAuthError(host, "channel lookup failed", err)
	}
	var channels channelList
	if err := transport.DecodeResponse(resp, &channels); err != nil {
		return errors.NewAuthError(host, "channel lookup rejected", err)
	}
	if len(channels.Items) == 0 {
		return errors.NewAuthError(host, "channel "+c.channelID+" not found", nil)
	}

	c.channelTitle = channels.Items[0].Snippet.Title
	return nil
}

// subscriptionPage mirrors one page of the subscriptions.list response.
type subscriptionPage struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		Snippet struct {
			Title      string `json:"title"`
			ResourceID struct {
				ChannelID string `json:"channelId"`
			} `json:"resourceId"`
		} `json:"snippet"`
	} `json:"items"`
}

// Subscriptions lists the channels the account follows, one API page at
// a time. The sequence is finite and must be drained in one pass.
func (c *Client) Subscriptions(ctx context.Context, opts ...sources.Option) subscriptions.Seq {
	options := sources.NewOptions(opts...)

	return func(yield func(subscriptions.Item, error) bool) {
		if options.IncludeSelf {
			self := subscriptions.Item{
				Title: c.channelTitle,
				URL:   fmt.Sprintf(feedURLFormat, c.channelID),
			}
			if !yield(self, nil) {
				return
			}
		}

		pageToken := ""
		for {
			page, err := c.fetchPage(ctx, pageToken)
			if err != nil {
				yield(subscriptions.Item{}, errors.NewSourceError(Name, "listing subscriptions", err))
				return
			}

			for _, item := range page.Items {
				sub := subscriptions.Item{
					Title: item.Snippet.Title,
					URL:   fmt.Sprintf(feedURLFormat, item.Snippet.ResourceID.ChannelID),
				}
				if !yield(sub, nil) {
					return
				}
			}

			if page.NextPageToken == "" {
				return
			}
			pageToken = page.NextPageToken
		}
	}
}

// fetchPage fetches one page of subscriptions.
func (c *Client) fetchPage(ctx context.Context, pageToken string) (*subscriptionPage, error) {
	query := url.Values{
		"part":       {"snippet"},
		"channelId":  {c.channelID},
		"maxResults": {fmt.Sprint(pageSize)},
	}
	if pageToken != "" {
		query.Set("pageToken", pageToken)
	}

	resp, err := c.transport.Get(ctx, c.apiURL+"/subscriptions?"+query.Encode())
	if err != nil {
		return nil, err
	}
	var page subscriptionPage
	if err := transport.DecodeResponse(resp, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
