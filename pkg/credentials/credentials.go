// Package credentials loads per-host login/password entries from a
// local YAML secrets file. Entries are keyed by hostname and consulted
// once per provider per run; a missing entry for a required host is a
// fatal configuration error.
package credentials

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/feedtools/subsync/pkg/errors"
)

// DefaultFile is the credentials file location relative to the user's
// home directory.
const DefaultFile = ".subsync/credentials.yaml"

// Credentials is a single login/password pair for one host.
type Credentials struct {
	Login    string `yaml:"login"`
	Password string `yaml:"password"`
}

// Store holds the per-host credential entries for one run.
type Store struct {
	hosts map[string]Credentials
}

// file is the on-disk layout of the secrets file.
type file struct {
	Hosts map[string]Credentials `yaml:"hosts"`
}

// Load reads the credentials file at path. An empty path resolves to
// DefaultFile under the user's home directory. A missing file yields an
// empty store; lookups then rely on environment overrides alone.
func Load(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Store{hosts: map[string]Credentials{}}, nil
		}
		path = filepath.Join(home, DefaultFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Store{hosts: map[string]Credentials{}}, nil
		}
		return nil, errors.WrapIO("read", path, err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	if f.Hosts == nil {
		f.Hosts = map[string]Credentials{}
	}

	return &Store{hosts: f.Hosts}, nil
}

// Lookup returns the credentials for host. Environment variables of the
// form SUBSYNC_<HOST>_LOGIN / SUBSYNC_<HOST>_PASSWORD (dots and dashes
// mapped to underscores) override file entries field by field. Absence
// of any entry for the host is a configuration error.
func (s *Store) Lookup(host string) (Credentials, error) {
	creds, found := s.hosts[host]

	prefix := "SUBSYNC_" + hostEnvKey(host)
	if login := os.Getenv(prefix + "_LOGIN"); login != "" {
		creds.Login = login
		found = true
	}
	if password := os.Getenv(prefix + "_PASSWORD"); password != "" {
		creds.Password = password
		found = true
	}

	if !found || creds.Login == "" {
		return Credentials{}, &errors.ConfigError{
			Field:   "credentials",
			Value:   host,
			Message: "no credentials for host " + host,
			Err:     errors.ErrCredentialsMissing,
		}
	}

	return creds, nil
}

// hostEnvKey maps a hostname to its environment variable fragment.
func hostEnvKey(host string) string {
	replacer := strings.NewReplacer(".", "_", "-", "_")
	return strings.ToUpper(replacer.Replace(host))
}
