// Package app provides the application context and dependency management
// for the subsync CLI. It centralizes configuration, logging, the
// provider registry, and the credentials store so commands receive
// their dependencies through one narrow interface.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/feedtools/subsync/internal/sources"
	"github.com/feedtools/subsync/pkg/credentials"
	pkgsources "github.com/feedtools/subsync/pkg/sources"
)

// App represents the subsync application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Provider registry
	registry *pkgsources.Registry

	// Credentials store (lazy-loaded, singleton)
	mu    sync.Mutex
	creds *credentials.Store
}

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	app := &App{
		version:  version,
		commit:   commit,
		date:     date,
		registry: sources.NewRegistry(),
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	return app, nil
}

// Version returns the version string.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Sources returns the provider registry.
func (a *App) Sources() *pkgsources.Registry {
	return a.registry
}

// ServiceURL returns the aggregator service base URL.
func (a *App) ServiceURL() string {
	return a.config.ServiceURL
}

// Credentials returns the credentials store, loading it on first use.
func (a *App) Credentials() (*credentials.Store, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.creds != nil {
		return a.creds, nil
	}

	store, err := credentials.Load(a.config.CredentialsFile)
	if err != nil {
		return nil, err
	}
	a.creds = store
	return store, nil
}
