package commands

import (
	"github.com/arthur-debert/hashdo/pkg/config"
	"github.com/arthur-debert/hashdo/pkg/errors"
	"github.com/arthur-debert/hashdo/pkg/logging"
	"github.com/arthur-debert/hashdo/pkg/registry"
	"github.com/arthur-debert/hashdo/pkg/types"
)

// RegistryOptions select the cards a command runs against
type RegistryOptions struct {
	// Config is the loaded configuration; nil means the embedded defaults
	Config *config.Config

	// FS is read from; nil means the OS filesystem
	FS types.FS
}

func (o RegistryOptions) build() (*registry.Registry, error) {
	cfg := o.Config
	if cfg == nil {
		cfg = config.Default()
	}
	return registry.Build(registry.NewOptions(cfg, o.FS))
}

// CountCardsOptions defines the options for the CountCards command
type CountCardsOptions struct {
	RegistryOptions

	// Filter is fuzzy-matched against card names; empty counts every card
	Filter string
}

// CountCards counts the cards matching a filter
func CountCards(opts CountCardsOptions) (*types.CountResult, error) {
	log := logging.GetLogger("commands.count")
	log.Debug().Str("filter", opts.Filter).Msg("Executing command")

	reg, err := opts.build()
	if err != nil {
		return nil, err
	}

	result := &types.CountResult{
		Filter: opts.Filter,
		Count:  reg.Count(opts.Filter),
	}
	log.Info().Int("count", result.Count).Msg("Command finished")
	return result, nil
}

// ListCardsOptions defines the options for the ListCards command
type ListCardsOptions struct {
	RegistryOptions

	// Filter is fuzzy-matched against card names; empty lists every card
	Filter string
}

// ListCards lists the cards matching a filter
func ListCards(opts ListCardsOptions) (*types.CardListResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("filter", opts.Filter).Msg("Executing command")

	reg, err := opts.build()
	if err != nil {
		return nil, err
	}

	result := &types.CardListResult{
		Filter: opts.Filter,
		Cards:  reg.Cards(opts.Filter),
	}
	log.Info().Int("cardCount", len(result.Cards)).Msg("Command finished")
	return result, nil
}

// ShowCardOptions defines the options for the ShowCard command
type ShowCardOptions struct {
	RegistryOptions

	Pack string
	Card string
}

// ShowCard returns the full record of one card
func ShowCard(opts ShowCardOptions) (*types.Card, error) {
	log := logging.GetLogger("commands.show")
	log.Debug().Str("pack", opts.Pack).Str("card", opts.Card).Msg("Executing command")

	if opts.Pack == "" || opts.Card == "" {
		return nil, errors.New(errors.ErrInvalidInput, "pack and card keys are required")
	}

	reg, err := opts.build()
	if err != nil {
		return nil, err
	}

	card, ok := reg.Card(opts.Pack, opts.Card)
	if !ok {
		return nil, cardNotFound(reg, opts.Pack, opts.Card)
	}
	return card, nil
}

// ListPacksOptions defines the options for the ListPacks command
type ListPacksOptions struct {
	RegistryOptions
}

// ListPacks lists the indexed packs
func ListPacks(opts ListPacksOptions) (*types.PackListResult, error) {
	log := logging.GetLogger("commands.packs")
	log.Debug().Msg("Executing command")

	reg, err := opts.build()
	if err != nil {
		return nil, err
	}

	result := &types.PackListResult{Packs: reg.Packs()}
	log.Info().Int("packCount", len(result.Packs)).Msg("Command finished")
	return result, nil
}
