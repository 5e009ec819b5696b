package config

import (
	"os"
	"path/filepath"

	"github.com/pakt-build/pakt/pkg/errors"
	"github.com/pakt-build/pakt/pkg/logging"
)

// Find searches startDir and its ancestors for the first configuration
// file matching one of names, nearest directory first. Within one
// directory, names are tried in the given order.
func Find(startDir string, names []string) (string, error) {
	logger := logging.GetLogger("config")

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrConfigLoad,
			"cannot resolve search directory %s", startDir)
	}

	for {
		for _, name := range names {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				logger.Debug().Str("path", candidate).Msg("found config file")
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", errors.Newf(errors.ErrConfigLoad,
		"no config file (%v) found in %s or any parent directory", names, startDir)
}
