package builder

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/dmitrymomot/buildlocale/pkg/locale"
	"github.com/dmitrymomot/buildlocale/pkg/logger"
)

const checksumPrefix = "blake2b-256:"

// Manifest lists the bundles produced by a run.
type Manifest struct {
	RunID       string          `json:"run_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Dest        string          `json:"dest"`
	Bundles     []ManifestEntry `json:"bundles"`
}

// ManifestEntry describes one bundle.
type ManifestEntry struct {
	Locale   locale.Code `json:"locale"`
	Name     string      `json:"name,omitempty"`
	Path     string      `json:"path"`
	Keys     int         `json:"keys"`
	Size     int         `json:"size"`
	Checksum string      `json:"checksum"`
}

// Checksum returns the prefixed hex BLAKE2b-256 digest of data.
func Checksum(data []byte) string {
	sum := blake2b.Sum256(data)
	return checksumPrefix + hex.EncodeToString(sum[:])
}

// NewManifest builds the manifest of a result.
func NewManifest(res *Result) Manifest {
	m := Manifest{
		RunID:       res.RunID,
		GeneratedAt: res.GeneratedAt,
		Dest:        res.Dest,
		Bundles:     make([]ManifestEntry, 0, len(res.Outputs)),
	}
	for _, out := range res.Outputs {
		m.Bundles = append(m.Bundles, ManifestEntry{
			Locale:   out.Locale,
			Name:     locale.DisplayName(out.Locale),
			Path:     out.Path,
			Keys:     out.Keys,
			Size:     out.Size,
			Checksum: out.Checksum,
		})
	}
	return m
}

func (b *Builder) writeManifest(ctx context.Context, res *Result) error {
	data, err := json.MarshalIndent(NewManifest(res), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteManifest, err)
	}

	p := res.Dest + b.opts.Manifest
	if err := b.sink.WriteFile(ctx, p, append(data, '\n')); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteManifest, p, err)
	}
	res.Manifest = p
	b.logger.DebugContext(ctx, "manifest written", logger.Path(p))
	return nil
}
