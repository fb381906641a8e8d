package sources

import (
	"github.com/feedtools/subsync/internal/sources/soundcloud"
	"github.com/feedtools/subsync/internal/sources/vimeo"
	"github.com/feedtools/subsync/internal/sources/youtube"
	"github.com/feedtools/subsync/pkg/sources"
)

// NewRegistry builds the registry of supported providers. The registry
// is constructed per run; factories return fresh instances so session
// state never outlives a run.
func NewRegistry() *sources.Registry {
	registry := sources.NewRegistry()
	registry.Register(youtube.Name, func() sources.Source { return youtube.New() })
	registry.Register(soundcloud.Name, func() sources.Source { return soundcloud.New() })
	registry.Register(vimeo.Name, func() sources.Source { return vimeo.New() })
	return registry
}
