package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/pakt-build/pakt/pkg/errors"
)

//go:embed defaults.toml
var defaultSettings []byte

// Settings are the tool-level knobs of pakt itself, as opposed to the
// per-project stage table. Layered: embedded defaults, then the user
// settings file, then PAKT_* environment variables.
type Settings struct {
	Resolve struct {
		// ConfigNames are the project config filenames searched for,
		// in priority order
		ConfigNames []string `koanf:"config_names"`

		// DefaultContext is the runtime environment context used when
		// none is given on the command line
		DefaultContext string `koanf:"default_context"`
	} `koanf:"resolve"`

	Logging struct {
		FileEnabled bool `koanf:"file_enabled"`
	} `koanf:"logging"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// LoadSettings loads tool settings: embedded defaults, then the user
// settings file under the XDG config directory, then environment
// overrides. PAKT_RESOLVE__DEFAULT_CONTEXT=node maps to
// resolve.default_context.
func LoadSettings() (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default settings")
	}

	userPath := filepath.Join(xdg.ConfigHome, "pakt", "pakt.toml")
	if _, err := os.Stat(userPath); err == nil {
		if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad,
				"failed to load settings from %s", userPath)
		}
	}

	if err := k.Load(env.Provider("PAKT_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "PAKT_")), "__", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load settings from environment")
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal settings")
	}

	return &settings, nil
}
