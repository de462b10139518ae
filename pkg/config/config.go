package config

import (
	"net/url"
	"strings"
	"sync"

	"github.com/arthur-debert/hashdo/pkg/errors"
	"github.com/arthur-debert/hashdo/pkg/types"
)

// Config is the complete hashdo configuration
type Config struct {
	BaseURL  string `koanf:"base_url"`
	CardsDir string `koanf:"cards_dir"`
	Pack     Pack   `koanf:"pack"`
	Cards    Cards  `koanf:"cards"`
}

// Pack holds pack discovery settings
type Pack struct {
	Prefix   string `koanf:"prefix"`
	Manifest string `koanf:"manifest"`
}

// Cards holds card discovery settings
type Cards struct {
	Extensions []string `koanf:"extensions"`
	IconFile   string   `koanf:"icon_file"`
}

var (
	defaultOnce sync.Once
	defaultCfg  *Config
)

// Default returns the configuration built from the embedded defaults only.
// Callers get a copy they are free to modify.
func Default() *Config {
	defaultOnce.Do(func() {
		cfg, err := load(LoadOptions{SkipEnv: true, SkipFiles: true})
		if err != nil {
			panic("embedded defaults are invalid: " + err.Error())
		}
		defaultCfg = cfg
	})
	cfg := *defaultCfg
	cfg.Cards.Extensions = append([]string(nil), defaultCfg.Cards.Extensions...)
	return &cfg
}

// Validate checks the configuration for values the registry cannot work with
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Pack.Prefix) == "" {
		return errors.New(errors.ErrConfigValid, "pack prefix cannot be empty")
	}
	if strings.TrimSpace(c.Pack.Manifest) == "" {
		return errors.New(errors.ErrConfigValid, "pack manifest file name cannot be empty")
	}
	if c.CardsDir == "" {
		return errors.New(errors.ErrConfigValid, "cards directory cannot be empty")
	}
	if c.Cards.IconFile == "" {
		return errors.New(errors.ErrConfigValid, "card icon file name cannot be empty")
	}
	if len(c.Cards.Extensions) == 0 {
		return errors.New(errors.ErrConfigValid, "at least one card extension is required")
	}
	for _, ext := range c.Cards.Extensions {
		if _, ok := types.CardFormatForExtension(ext); !ok {
			return errors.Newf(errors.ErrConfigValid, "unsupported card extension %q", ext).
				WithDetail("extension", ext)
		}
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid base URL").
			WithDetail("baseUrl", c.BaseURL)
	}
	if u.Scheme == "" || u.Host == "" {
		return errors.New(errors.ErrConfigValid, "base URL must be absolute").
			WithDetail("baseUrl", c.BaseURL)
	}
	return nil
}

// normalize lower-cases extensions and makes sure each has a leading dot
func (c *Config) normalize() {
	for i, ext := range c.Cards.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Cards.Extensions[i] = ext
	}
}
