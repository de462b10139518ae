package registry

import (
	"net/url"
	"strings"

	"github.com/arthur-debert/hashdo/pkg/config"
	"github.com/arthur-debert/hashdo/pkg/errors"
	"github.com/arthur-debert/hashdo/pkg/filesystem"
	"github.com/arthur-debert/hashdo/pkg/logging"
	"github.com/arthur-debert/hashdo/pkg/packs"
	"github.com/arthur-debert/hashdo/pkg/types"
	"github.com/rs/zerolog"
)

// Init builds a registry from cardsDir on the OS filesystem using the
// default pack prefix, manifest name and card extensions.
func Init(baseURL, cardsDir string) (*Registry, error) {
	cfg := config.Default()
	cfg.BaseURL = baseURL
	cfg.CardsDir = cardsDir
	return Build(NewOptions(cfg, filesystem.NewOS()))
}

// Build scans opts.CardsDir and returns the registry of its visible packs.
// Any error aborts the build: a registry is either complete or not returned.
func Build(opts Options) (*Registry, error) {
	opts = opts.withDefaults()

	logger := logging.GetLogger("registry.builder")
	done := logging.LogOperationStart(logger, "registry.build")
	defer done()

	logger.Info().Str("cardsDir", opts.CardsDir).Msg("Cards will be loaded from cards directory")

	candidates, err := packs.GetPackCandidatesFS(opts.CardsDir, opts.Prefix, opts.FS)
	if err != nil {
		return nil, err
	}

	b := &builder{
		opts:    opts,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		reg:     newRegistry(),
		logger:  logger,
	}

	for _, candidate := range candidates {
		if err := b.addCandidate(candidate); err != nil {
			return nil, err
		}
	}

	// The summary carries no level so it is emitted at any verbosity.
	stats := b.reg.stats
	logger.Log().
		Int("packs", stats.Packs).
		Int("cards", stats.Cards).
		Int("hidden", stats.Hidden).
		Msgf("%d packs and %d card(s) have been loaded (%d hidden)", stats.Packs, stats.Cards, stats.Hidden)

	return b.reg, nil
}

type builder struct {
	opts    Options
	baseURL string
	reg     *Registry
	logger  zerolog.Logger
}

// addCandidate validates one candidate directory and indexes it if visible
func (b *builder) addCandidate(packDir string) error {
	manifest, found, err := packs.LoadManifestFS(packDir, b.opts.ManifestFile, b.opts.FS)
	if err != nil {
		return err
	}
	if !found {
		b.logger.Debug().Str("path", packDir).Msg("No manifest, not a package")
		return nil
	}
	if manifest.Pack == nil {
		b.reg.stats.Skipped++
		b.logger.Debug().Str("path", packDir).Str("name", manifest.Name).Msg("Package has no pack section, skipping")
		return nil
	}

	b.reg.stats.Packs++

	key := packs.PackKey(manifest.Name, b.opts.Prefix)
	if manifest.Pack.Hidden {
		b.reg.stats.Hidden++
		b.logger.Debug().Str("pack", key).Msg("Pack is hidden, skipping")
		return nil
	}

	if key == "" {
		return errors.New(errors.ErrPackInvalid, "pack name is only the pack prefix").
			WithDetail("path", packDir).
			WithDetail("name", manifest.Name)
	}
	if existing, dup := b.reg.packs[key]; dup {
		return errors.Newf(errors.ErrPackDuplicate, "pack %q is provided by more than one directory", key).
			WithDetail("path", packDir).
			WithDetail("previous", existing.Path)
	}

	pack, err := b.loadPack(key, manifest, packDir)
	if err != nil {
		return err
	}

	b.reg.packs[key] = pack
	b.logger.Trace().Str("pack", key).Int("cards", len(pack.Cards)).Msg("Loaded pack")
	return nil
}

func (b *builder) loadPack(key string, manifest *types.Manifest, packDir string) (*types.Pack, error) {
	files, err := packs.GetCardFilesFS(packDir, b.opts.CardExtensions, b.opts.ManifestFile, b.opts.FS)
	if err != nil {
		return nil, err
	}

	pack := &types.Pack{
		Key:   key,
		Name:  manifest.Pack.FriendlyName,
		Path:  packDir,
		Cards: make(map[string]*types.Card, len(files)),
	}

	for _, file := range files {
		def, err := packs.LoadCardDefinitionFS(file, b.opts.FS)
		if err != nil {
			if hashdoErr, ok := err.(*errors.HashdoError); ok {
				hashdoErr.WithDetail("pack", key)
			}
			return nil, err
		}

		pack.Cards[file.Key] = b.newCard(key, file.Key, def)
		b.reg.stats.Cards++
	}

	return pack, nil
}

// newCard materializes a card, deriving its base URL and default icon
func (b *builder) newCard(packKey, cardKey string, def *types.CardDefinition) *types.Card {
	baseURL := b.baseURL + "/" + url.PathEscape(packKey) + "/" + url.PathEscape(cardKey)

	icon := def.Icon
	if icon == "" {
		icon = baseURL + "/" + b.opts.IconFile
	}

	return &types.Card{
		Pack:        packKey,
		Card:        cardKey,
		Name:        def.Name,
		Description: def.Description,
		Icon:        icon,
		BaseURL:     baseURL,
		Inputs:      def.Inputs,
	}
}
