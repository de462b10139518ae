package packs

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/hashdo/pkg/errors"
	"github.com/arthur-debert/hashdo/pkg/logging"
	"github.com/arthur-debert/hashdo/pkg/types"
)

// GetPackCandidatesFS returns the directories in cardsDir whose name starts
// with prefix, sorted by path. A missing or unreadable cards directory is an
// error: there is nothing to fall back to at startup.
func GetPackCandidatesFS(cardsDir, prefix string, filesystem types.FS) ([]string, error) {
	logger := logging.GetLogger("packs.discovery")
	logger.Trace().Str("root", cardsDir).Str("prefix", prefix).Msg("Getting pack candidates")

	info, err := filesystem.Stat(cardsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrNotFound, "cards directory does not exist").
				WithDetail("path", cardsDir)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot access cards directory").
			WithDetail("path", cardsDir)
	}

	if !info.IsDir() {
		return nil, errors.New(errors.ErrInvalidInput, "cards directory is not a directory").
			WithDetail("path", cardsDir)
	}

	entries, err := filesystem.ReadDir(cardsDir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read cards directory").
			WithDetail("path", cardsDir)
	}

	var candidates []string
	for _, entry := range entries {
		name := entry.Name()

		if !strings.HasPrefix(name, prefix) {
			logger.Trace().Str("name", name).Msg("Skipping entry without pack prefix")
			continue
		}

		fullPath := filepath.Join(cardsDir, name)
		if !isDir(entry, fullPath, filesystem) {
			logger.Trace().Str("name", name).Msg("Skipping non-directory entry")
			continue
		}

		candidates = append(candidates, fullPath)
		logger.Trace().Str("path", fullPath).Msg("Found pack candidate")
	}

	sort.Strings(candidates)

	logger.Debug().Int("count", len(candidates)).Msg("Found pack candidates")
	return candidates, nil
}

// isDir reports whether entry is a directory, following symlinks
func isDir(entry fs.DirEntry, fullPath string, filesystem types.FS) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := filesystem.Stat(fullPath)
	return err == nil && info.IsDir()
}
