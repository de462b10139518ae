package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/hashdo/pkg/filesystem"
	"github.com/arthur-debert/hashdo/pkg/types"
	"github.com/bytedance/sonic"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// PackPrefix is the default pack directory and manifest name prefix
const PackPrefix = "hashdo-"

// CardsTree is a cards directory under construction
type CardsTree struct {
	t    *testing.T
	Root string
	Fs   afero.Fs
}

// NewCardsTree creates an empty cards directory on an in-memory filesystem
func NewCardsTree(t *testing.T) *CardsTree {
	t.Helper()

	mem := afero.NewMemMapFs()
	root := "/cards"
	require.NoError(t, mem.MkdirAll(root, 0755))

	return &CardsTree{t: t, Root: root, Fs: mem}
}

// NewDiskCardsTree creates an empty cards directory on disk
func NewDiskCardsTree(t *testing.T) *CardsTree {
	t.Helper()

	root := filepath.Join(t.TempDir(), "cards")
	require.NoError(t, os.MkdirAll(root, 0755))

	return &CardsTree{t: t, Root: root, Fs: afero.NewOsFs()}
}

// FS returns the tree's filesystem as a types.FS
func (c *CardsTree) FS() types.FS {
	return filesystem.NewAferoFS(c.Fs)
}

// WriteFile writes a file relative to the cards root, creating parents
func (c *CardsTree) WriteFile(rel, content string) string {
	c.t.Helper()

	path := filepath.Join(c.Root, rel)
	require.NoError(c.t, c.Fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(c.t, afero.WriteFile(c.Fs, path, []byte(content), 0644))
	return path
}

// AddDir creates an empty directory relative to the cards root
func (c *CardsTree) AddDir(rel string) string {
	c.t.Helper()

	path := filepath.Join(c.Root, rel)
	require.NoError(c.t, c.Fs.MkdirAll(path, 0755))
	return path
}

// AddPackDir creates a pack directory with the given raw manifest content.
// An empty manifest leaves the directory without a manifest.
func (c *CardsTree) AddPackDir(dirName, manifest string) *TestPack {
	c.t.Helper()

	dir := c.AddDir(dirName)
	if manifest != "" {
		c.WriteFile(filepath.Join(dirName, "package.json"), manifest)
	}
	return &TestPack{tree: c, Dir: dir}
}

// AddPack creates a visible pack "hashdo-<key>"
func (c *CardsTree) AddPack(key, friendlyName string) *TestPack {
	c.t.Helper()
	return c.AddPackDir(PackPrefix+key, c.manifest(PackPrefix+key, map[string]interface{}{
		"friendlyName": friendlyName,
	}))
}

// AddHiddenPack creates a pack "hashdo-<key>" marked hidden
func (c *CardsTree) AddHiddenPack(key, friendlyName string) *TestPack {
	c.t.Helper()
	return c.AddPackDir(PackPrefix+key, c.manifest(PackPrefix+key, map[string]interface{}{
		"friendlyName": friendlyName,
		"hidden":       true,
	}))
}

func (c *CardsTree) manifest(name string, pack map[string]interface{}) string {
	c.t.Helper()

	data, err := sonic.Marshal(map[string]interface{}{
		"name":    name,
		"version": "1.0.0",
		"pack":    pack,
	})
	require.NoError(c.t, err)
	return string(data)
}

// TestPack is a pack directory inside a CardsTree
type TestPack struct {
	tree *CardsTree
	Dir  string
}

// AddFile writes a file into the pack directory
func (p *TestPack) AddFile(name, content string) *TestPack {
	p.tree.t.Helper()

	rel, err := filepath.Rel(p.tree.Root, filepath.Join(p.Dir, name))
	require.NoError(p.tree.t, err)
	p.tree.WriteFile(rel, content)
	return p
}

// AddCard writes "<key>.card.json" with the given fields
func (p *TestPack) AddCard(key string, fields map[string]interface{}) *TestPack {
	p.tree.t.Helper()

	data, err := sonic.Marshal(fields)
	require.NoError(p.tree.t, err)
	return p.AddFile(key+".card.json", string(data))
}

// AddNamedCard writes "<key>.card.json" with just a name
func (p *TestPack) AddNamedCard(key, name string) *TestPack {
	p.tree.t.Helper()
	return p.AddCard(key, map[string]interface{}{"name": name})
}
