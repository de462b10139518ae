// Test Type: Unit Test
// Description: Tests for pack candidate discovery

package packs_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/hashdo/pkg/errors"
	"github.com/arthur-debert/hashdo/pkg/packs"
	"github.com/arthur-debert/hashdo/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPackCandidatesFS(t *testing.T) {
	t.Run("returns_prefixed_directories_sorted", func(t *testing.T) {
		tree := testutil.NewCardsTree(t)
		tree.AddDir("hashdo-weather")
		tree.AddDir("hashdo-news")
		tree.AddDir("other-pack")
		tree.AddDir("node_modules")
		tree.WriteFile("hashdo-readme.md", "not a directory")

		candidates, err := packs.GetPackCandidatesFS(tree.Root, "hashdo-", tree.FS())
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(tree.Root, "hashdo-news"),
			filepath.Join(tree.Root, "hashdo-weather"),
		}, candidates)
	})

	t.Run("empty_directory", func(t *testing.T) {
		tree := testutil.NewCardsTree(t)

		candidates, err := packs.GetPackCandidatesFS(tree.Root, "hashdo-", tree.FS())
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("custom_prefix", func(t *testing.T) {
		tree := testutil.NewCardsTree(t)
		tree.AddDir("hashdo-weather")
		tree.AddDir("acme-weather")

		candidates, err := packs.GetPackCandidatesFS(tree.Root, "acme-", tree.FS())
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(tree.Root, "acme-weather")}, candidates)
	})

	t.Run("missing_root_is_an_error", func(t *testing.T) {
		tree := testutil.NewCardsTree(t)

		_, err := packs.GetPackCandidatesFS(filepath.Join(tree.Root, "missing"), "hashdo-", tree.FS())
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})

	t.Run("root_is_a_file", func(t *testing.T) {
		tree := testutil.NewCardsTree(t)
		path := tree.WriteFile("file.txt", "x")

		_, err := packs.GetPackCandidatesFS(path, "hashdo-", tree.FS())
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}
