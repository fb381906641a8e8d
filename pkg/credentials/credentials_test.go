package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/feedtools/subsync/pkg/errors"
)

func writeStore(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credentials.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndLookup(t *testing.T) {
	path := writeStore(t, `
hosts:
  theoldreader.com:
    login: reader@example.com
    password: hunter2
  vimeo.com:
    login: viewer
    password: pass
`)

	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	creds, err := store.Lookup("theoldreader.com")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if creds.Login != "reader@example.com" || creds.Password != "hunter2" {
		t.Errorf("Unexpected credentials: %+v", creds)
	}
}

func TestLookupMissingHostIsConfigError(t *testing.T) {
	path := writeStore(t, "hosts: {}\n")
	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	_, err = store.Lookup("soundcloud.com")
	if err == nil {
		t.Fatal("Expected error for missing host")
	}
	if !errors.IsConfig(err) {
		t.Error("Missing credentials should be a configuration error")
	}
	if !errors.Is(err, errors.ErrCredentialsMissing) {
		t.Error("Error should unwrap to ErrCredentialsMissing")
	}
}

func TestEnvOverridesFileEntry(t *testing.T) {
	path := writeStore(t, `
hosts:
  theoldreader.com:
    login: stale@example.com
    password: old
`)
	t.Setenv("SUBSYNC_THEOLDREADER_COM_LOGIN", "fresh@example.com")

	store, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	creds, err := store.Lookup("theoldreader.com")
	if err != nil {
		t.Fatal(err)
	}
	if creds.Login != "fresh@example.com" {
		t.Errorf("Env login should override file entry, got %s", creds.Login)
	}
	if creds.Password != "old" {
		t.Errorf("Password should come from file, got %s", creds.Password)
	}
}

func TestEnvOnlyEntry(t *testing.T) {
	path := writeStore(t, "hosts: {}\n")
	t.Setenv("SUBSYNC_YOUTUBE_COM_LOGIN", "tuber")
	t.Setenv("SUBSYNC_YOUTUBE_COM_PASSWORD", "secret")

	store, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	creds, err := store.Lookup("youtube.com")
	if err != nil {
		t.Fatalf("Env-only entry should resolve, got %v", err)
	}
	if creds.Login != "tuber" || creds.Password != "secret" {
		t.Errorf("Unexpected credentials: %+v", creds)
	}
}

func TestLoadMissingFileYieldsEmptyStore(t *testing.T) {
	store, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Missing file should not fail Load: %v", err)
	}
	if _, err := store.Lookup("example.com"); err == nil {
		t.Error("Empty store should report missing credentials")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeStore(t, "hosts: [not a map\n")
	if _, err := Load(path); err == nil {
		t.Error("Malformed YAML should fail Load")
	}
}
