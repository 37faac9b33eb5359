package ports

import "beast/internal/types"

// ManifestPort loads and persists the whole project manifest.
type ManifestPort interface {
	Load() (*types.Manifest, error)
	Save(manifest *types.Manifest) error
}
