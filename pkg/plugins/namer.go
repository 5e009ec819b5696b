package plugins

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pakt-build/pakt/pkg/types"
)

const HashNamerName = "hash-namer"

// HashNamer names a bundle after its entry file with a short content
// hash suffix, e.g. app.3f7a2c10.js
type HashNamer struct{}

func (n *HashNamer) Name(ctx context.Context, bundle *types.Bundle) (string, error) {
	if bundle.EntryPath == "" {
		// Decline; a later namer in the pipeline may still apply.
		return "", nil
	}

	hash := sha256.New()
	for _, asset := range bundle.Assets {
		hash.Write(asset.Contents)
	}
	digest := hex.EncodeToString(hash.Sum(nil))[:8]

	base := filepath.Base(bundle.EntryPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	return fmt.Sprintf("%s.%s%s", stem, digest, ext), nil
}

func init() {
	MustRegister(&types.Plugin{
		PluginName: HashNamerName,
		Namer:      &HashNamer{},
	})
}
