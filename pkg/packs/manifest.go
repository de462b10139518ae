package packs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/hashdo/pkg/errors"
	"github.com/arthur-debert/hashdo/pkg/types"
	"github.com/bytedance/sonic"
)

// LoadManifestFS reads and parses the manifest of the package in packDir.
//
// found is false, with a nil error, when the directory has no manifest: such
// directories are not packages. A manifest that cannot be parsed, or that has
// no name, is an error.
func LoadManifestFS(packDir, manifestFile string, filesystem types.FS) (manifest *types.Manifest, found bool, err error) {
	manifestPath := filepath.Join(packDir, manifestFile)

	if _, err := filesystem.Stat(manifestPath); err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.Wrap(err, errors.ErrFileAccess, "cannot access pack manifest").
			WithDetail("path", manifestPath)
	}

	data, err := filesystem.ReadFile(manifestPath)
	if err != nil {
		return nil, true, errors.Wrap(err, errors.ErrFileAccess, "cannot read pack manifest").
			WithDetail("path", manifestPath)
	}

	manifest, err = ParseManifest(data)
	if err != nil {
		if hashdoErr, ok := err.(*errors.HashdoError); ok {
			hashdoErr.WithDetail("path", manifestPath)
		}
		return nil, true, err
	}

	return manifest, true, nil
}

// ParseManifest decodes a JSON package manifest. A "pack" section of false,
// 0 or "" is treated like an absent one.
func ParseManifest(data []byte) (*types.Manifest, error) {
	var section struct {
		Pack interface{} `json:"pack"`
	}
	if err := sonic.Unmarshal(data, &section); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "failed to parse pack manifest")
	}

	var manifest types.Manifest
	if isEmptyPackSection(section.Pack) {
		var named struct {
			Name string `json:"name"`
		}
		if err := sonic.Unmarshal(data, &named); err != nil {
			return nil, errors.Wrap(err, errors.ErrManifestParse, "failed to parse pack manifest")
		}
		manifest.Name = named.Name
	} else if err := sonic.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "failed to parse pack manifest")
	}

	if strings.TrimSpace(manifest.Name) == "" {
		return nil, errors.New(errors.ErrPackInvalid, "pack manifest has no name")
	}

	return &manifest, nil
}

func isEmptyPackSection(v interface{}) bool {
	switch section := v.(type) {
	case nil:
		return true
	case bool:
		return !section
	case float64:
		return section == 0
	case string:
		return section == ""
	default:
		return false
	}
}

// PackKey derives a pack key from a manifest name by removing the naming prefix
func PackKey(name, prefix string) string {
	return strings.TrimPrefix(name, prefix)
}
