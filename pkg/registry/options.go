package registry

import (
	"github.com/arthur-debert/hashdo/pkg/config"
	"github.com/arthur-debert/hashdo/pkg/filesystem"
	"github.com/arthur-debert/hashdo/pkg/types"
)

// Options control how a Registry is built
type Options struct {
	// BaseURL is where cards are served from; trailing slashes are ignored
	BaseURL string

	// CardsDir is the directory scanned for packs
	CardsDir string

	// Prefix selects pack directories and is stripped from manifest names
	Prefix string

	// ManifestFile is the package manifest looked for in each pack directory
	ManifestFile string

	// CardExtensions are the file name suffixes of card definition files
	CardExtensions []string

	// IconFile is appended to a card's base URL when it has no explicit icon
	IconFile string

	// FS is read from; nil means the OS filesystem
	FS types.FS
}

// NewOptions maps a configuration onto build options
func NewOptions(cfg *config.Config, filesystem types.FS) Options {
	return Options{
		BaseURL:        cfg.BaseURL,
		CardsDir:       cfg.CardsDir,
		Prefix:         cfg.Pack.Prefix,
		ManifestFile:   cfg.Pack.Manifest,
		CardExtensions: append([]string(nil), cfg.Cards.Extensions...),
		IconFile:       cfg.Cards.IconFile,
		FS:             filesystem,
	}
}

// withDefaults fills unset fields from the embedded configuration defaults
func (o Options) withDefaults() Options {
	defaults := config.Default()
	if o.Prefix == "" {
		o.Prefix = defaults.Pack.Prefix
	}
	if o.ManifestFile == "" {
		o.ManifestFile = defaults.Pack.Manifest
	}
	if len(o.CardExtensions) == 0 {
		o.CardExtensions = defaults.Cards.Extensions
	}
	if o.IconFile == "" {
		o.IconFile = defaults.Cards.IconFile
	}
	if o.FS == nil {
		o.FS = filesystem.NewOS()
	}
	return o
}
