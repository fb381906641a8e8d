// Package cmd implements the subsync subcommands. Commands receive
// their dependencies through the AppContext interface rather than
// reaching into the app package, which keeps them testable with
// lightweight fakes.
package cmd

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/feedtools/subsync/pkg/credentials"
	"github.com/feedtools/subsync/pkg/sources"
)

// AppContext defines the interface commands need from the app.
type AppContext interface {
	Logger() *zerolog.Logger
	Sources() *sources.Registry
	Credentials() (*credentials.Store, error)
	ServiceURL() string
	Version() string
	Commit() string
	Date() string
}

// loginSource constructs the named provider, looks up its credentials
// and authenticates. All provider-facing commands share this preamble.
func loginSource(ctx context.Context, app AppContext, name string) (sources.Source, error) {
	src, err := app.Sources().New(name)
	if err != nil {
		return nil, err
	}

	store, err := app.Credentials()
	if err != nil {
		return nil, err
	}
	creds, err := store.Lookup(src.Host())
	if err != nil {
		return nil, err
	}

	if err := src.Login(ctx, creds); err != nil {
		return nil, err
	}
	return src, nil
}
