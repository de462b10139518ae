package packs

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/hashdo/pkg/errors"
	"github.com/arthur-debert/hashdo/pkg/logging"
	"github.com/arthur-debert/hashdo/pkg/types"
)

// GetCardFilesFS returns the card definition files at the top level of
// packDir, sorted by card key. A file is a card definition when its name ends
// in one of extensions; the card key is the name with that extension removed.
// Sub-directories, dot-files and the manifest itself are never cards.
func GetCardFilesFS(packDir string, extensions []string, manifestFile string, filesystem types.FS) ([]types.CardFile, error) {
	logger := logging.GetLogger("packs.cards")

	entries, err := filesystem.ReadDir(packDir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read pack directory").
			WithDetail("path", packDir)
	}

	// Longest first so ".card.json" wins over ".json" when both are configured.
	exts := append([]string(nil), extensions...)
	sort.SliceStable(exts, func(i, j int) bool { return len(exts[i]) > len(exts[j]) })

	seen := make(map[string]string)
	var files []types.CardFile
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || name == manifestFile {
			continue
		}

		key, ext, ok := splitCardName(name, exts)
		if !ok {
			continue
		}

		format, ok := types.CardFormatForExtension(ext)
		if !ok {
			continue
		}

		path := filepath.Join(packDir, name)
		if previous, dup := seen[key]; dup {
			return nil, errors.Newf(errors.ErrCardDuplicate, "card %q is defined more than once", key).
				WithDetail("path", path).
				WithDetail("previous", previous)
		}
		seen[key] = path

		files = append(files, types.CardFile{Key: key, Path: path, Format: format})
		logger.Trace().Str("card", key).Str("path", path).Msg("Found card file")
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Key < files[j].Key })
	return files, nil
}

// splitCardName matches name against the card extensions, case-insensitively
func splitCardName(name string, extensions []string) (key, ext string, ok bool) {
	lower := strings.ToLower(name)
	for _, ext := range extensions {
		if len(name) > len(ext) && strings.HasSuffix(lower, strings.ToLower(ext)) {
			return name[:len(name)-len(ext)], ext, true
		}
	}
	return "", "", false
}
