package registry_test

import (
	"github.com/arthur-debert/hashdo/pkg/config"
)

func testConfig(cardsDir string) *config.Config {
	cfg := config.Default()
	cfg.BaseURL = "https://example.com"
	cfg.CardsDir = cardsDir
	return cfg
}
