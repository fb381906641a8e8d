package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedtools/subsync/pkg/credentials"
	"github.com/feedtools/subsync/pkg/logging"
	"github.com/feedtools/subsync/pkg/sources"
	"github.com/feedtools/subsync/pkg/subscriptions"
)

type fakeSource struct {
	items    []subscriptions.Item
	loggedIn bool
}

func (f *fakeSource) Name() string { return "fake" }
func (f *fakeSource) Host() string { return "fake.example" }

func (f *fakeSource) Login(_ context.Context, creds credentials.Credentials) error {
	f.loggedIn = true
	return nil
}

func (f *fakeSource) Subscriptions(_ context.Context, _ ...sources.Option) subscriptions.Seq {
	return subscriptions.FromSlice(f.items)
}

type fakeApp struct {
	registry *sources.Registry
	creds    *credentials.Store
}

func (f *fakeApp) Logger() *zerolog.Logger { return logging.Default() }

func (f *fakeApp) Sources() *sources.Registry { return f.registry }

func (f *fakeApp) Credentials() (*credentials.Store, error) { return f.creds, nil }

func (f *fakeApp) ServiceURL() string { return "https://reader.example" }
func (f *fakeApp) Version() string    { return "1.2.3" }
func (f *fakeApp) Commit() string     { return "abc1234" }
func (f *fakeApp) Date() string       { return "2026-01-01" }

func newFakeApp(t *testing.T, src *fakeSource) *fakeApp {
	t.Helper()
	t.Setenv("SUBSYNC_FAKE_EXAMPLE_LOGIN", "user")
	t.Setenv("SUBSYNC_FAKE_EXAMPLE_PASSWORD", "secret")

	registry := sources.NewRegistry()
	registry.Register("fake", func() sources.Source { return src })

	store, err := credentials.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	return &fakeApp{registry: registry, creds: store}
}

func TestProvidersCommandListsNames(t *testing.T) {
	app := newFakeApp(t, &fakeSource{})

	var buf bytes.Buffer
	cmd := NewProvidersCommand(app)
	cmd.SetOut(&buf)
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "fake\n", buf.String())
}

func TestVersionCommandOutput(t *testing.T) {
	app := newFakeApp(t, &fakeSource{})

	var buf bytes.Buffer
	cmd := NewVersionCommand(app)
	cmd.SetOut(&buf)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "subsync version 1.2.3")
	assert.Contains(t, buf.String(), "commit: abc1234")
}

func TestExportRendersOPML(t *testing.T) {
	src := &fakeSource{items: []subscriptions.Item{
		{Title: "B Channel", URL: "http://b.example/feed"},
		{Title: "A Channel", URL: "http://a.example/feed"},
	}}
	app := newFakeApp(t, src)

	var buf bytes.Buffer
	cmd := NewExportCommand(app)
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"fake", "--sort", "--folder", "Channels"})
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.True(t, src.loggedIn)
	assert.Contains(t, out, `<outline text="Channels" title="Channels">`)
	assert.Contains(t, out, `xmlUrl="http://a.example/feed"`)
	assert.Less(t, strings.Index(out, "a.example"), strings.Index(out, "b.example"))
}

func TestExportAppliesExclusions(t *testing.T) {
	src := &fakeSource{items: []subscriptions.Item{
		{Title: "Keep", URL: "http://keep.example/feed"},
		{Title: "Skip", URL: "http://skip.example/feed"},
	}}
	app := newFakeApp(t, src)

	var buf bytes.Buffer
	cmd := NewExportCommand(app)
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"fake", "--exclude", "http://skip.example/feed"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "keep.example")
	assert.NotContains(t, buf.String(), "skip.example")
}

func TestExportUnknownProvider(t *testing.T) {
	app := newFakeApp(t, &fakeSource{})

	cmd := NewExportCommand(app)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"nosuch"})
	assert.Error(t, cmd.Execute())
}
