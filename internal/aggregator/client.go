// Package aggregator implements the feed aggregator client against the
// Google Reader-compatible API dialect (ClientLogin plus the Stream
// API) used by The Old Reader, BazQux, FreshRSS and friends.
//
// Within the aggregator's namespace a feed is identified by a stream id
// of the form "feed/<feed-url>". This package strips the prefix on
// reads and restores it on writes, so the rest of the program deals in
// bare feed URLs.
package aggregator

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/feedtools/subsync/internal/transport"
	"github.com/feedtools/subsync/pkg/credentials"
	"github.com/feedtools/subsync/pkg/errors"
	"github.com/feedtools/subsync/pkg/logging"
	"github.com/feedtools/subsync/pkg/subscriptions"
)

const (
	// streamPrefix is the aggregator's feed stream id prefix.
	streamPrefix = "feed/"

	// labelPrefix is the aggregator's folder stream id prefix.
	labelPrefix = "user/-/label/"

	clientName = "subsync"
)

// Client talks to a Google Reader-compatible aggregator. It implements
// the reconciliation engine's aggregator capability.
type Client struct {
	baseURL   string
	host      string
	transport *transport.Client

	// actionToken authorizes write calls; fetched lazily, valid for the
	// duration of a run.
	actionToken string
}

// New creates a client for the aggregator at baseURL.
func New(baseURL string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return nil, errors.NewConfigError("aggregator-url", baseURL, "invalid aggregator URL "+baseURL)
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		host:      u.Host,
		transport: transport.New(&transport.NoAuth{}),
	}, nil
}

// Host returns the hostname used to key credential lookup.
func (c *Client) Host() string {
	return c.host
}

// Login performs ClientLogin and installs the session token on the
// transport. Any failure surfaces as an AuthError.
func (c *Client) Login(ctx context.Context, creds credentials.Credentials) error {
	form := url.Values{
		"client": {clientName},
		"Email":  {creds.Login},
		"Passwd": {creds.Password},
	}

	resp, err := c.transport.PostForm(ctx, c.baseURL+"/accounts/ClientLogin", form)
	if err != nil {
		return errors.NewAuthError(c.host, "login request failed", err)
	}
	body, err := transport.ReadBody(resp)
	if err != nil {
		return errors.NewAuthError(c.host, "login rejected", err)
	}

	token := parseClientLogin(string(body))
	if token == "" {
		return errors.NewAuthError(c.host, "no Auth token in login response", nil)
	}

	c.transport.SetAuth(&transport.HeaderAuth{Prefix: "GoogleLogin auth=", Token: token})
	logging.Debug().Str("host", c.host).Msg("aggregator login ok")
	return nil
}

// parseClientLogin extracts the Auth token from a ClientLogin response,
// a sequence of KEY=VALUE lines.
func parseClientLogin(body string) string {
	for _, line := range strings.Split(body, "\n") {
		if after, ok := strings.CutPrefix(strings.TrimSpace(line), "Auth="); ok {
			return after
		}
	}
	return ""
}

// subscriptionList mirrors the subscription/list JSON response.
type subscriptionList struct {
	Subscriptions []struct {
		ID         string `json:"id"`
		Title      string `json:"title"`
		Categories []struct {
			ID    string `json:"id"`
			Label string `json:"label"`
		} `json:"categories"`
	} `json:"subscriptions"`
}

// Subscriptions fetches the aggregator's full subscription list.
func (c *Client) Subscriptions(ctx context.Context) ([]subscriptions.Subscription, error) {
	resp, err := c.transport.Get(ctx, c.baseURL+"/reader/api/0/subscription/list?output=json")
	if err != nil {
		return nil, errors.WrapAPI(c.host, 0, err)
	}

	var list subscriptionList
	if err := transport.DecodeResponse(resp, &list); err != nil {
		return nil, err
	}

	subs := make([]subscriptions.Subscription, 0, len(list.Subscriptions))
	for _, entry := range list.Subscriptions {
		sub := subscriptions.Subscription{
			ID:    strings.TrimPrefix(entry.ID, streamPrefix),
			Title: entry.Title,
		}
		if len(entry.Categories) > 0 {
			sub.Label = entry.Categories[0].Label
		}
		subs = append(subs, sub)
	}

	logging.Debug().Str("host", c.host).Int("count", len(subs)).Msg("fetched aggregator subscriptions")
	return subs, nil
}

// Add subscribes to feedURL with the given title, filing it under label
// when one is configured.
func (c *Client) Add(ctx context.Context, feedURL, title, label string) error {
	form := url.Values{
		"ac": {"subscribe"},
		"s":  {streamPrefix + feedURL},
		"t":  {title},
	}
	if label != "" {
		form.Set("a", labelPrefix+label)
	}
	return c.edit(ctx, form)
}

// Remove unsubscribes from the feed with the given identifier.
func (c *Client) Remove(ctx context.Context, id string) error {
	form := url.Values{
		"ac": {"unsubscribe"},
		"s":  {streamPrefix + id},
	}
	return c.edit(ctx, form)
}

// edit posts a subscription/edit call, attaching the action token.
func (c *Client) edit(ctx context.Context, form url.Values) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}
	form.Set("T", token)

	resp, err := c.transport.PostForm(ctx, c.baseURL+"/reader/api/0/subscription/edit", form)
	if err != nil {
		return errors.WrapAPI(c.host, 0, err)
	}
	body, err := transport.ReadBody(resp)
	if err != nil {
		return err
	}
	if strings.TrimSpace(string(body)) != "OK" {
		return errors.NewAPIError(c.host, resp.StatusCode, fmt.Sprintf("unexpected edit response: %s", body))
	}
	return nil
}

// token fetches the write action token once per run.
func (c *Client) token(ctx context.Context) (string, error) {
	if c.actionToken != "" {
		return c.actionToken, nil
	}

	resp, err := c.transport.Get(ctx, c.baseURL+"/reader/api/0/token")
	if err != nil {
		return "", errors.WrapAPI(c.host, 0, err)
	}
	body, err := transport.ReadBody(resp)
	if err != nil {
		return "", err
	}

	c.actionToken = strings.TrimSpace(string(body))
	if c.actionToken == "" {
		return "", errors.NewAPIError(c.host, resp.StatusCode, "empty action token")
	}
	return c.actionToken, nil
}
