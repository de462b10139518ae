package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Discover and query hashdo card packs"
	MsgVersionShort    = "Print version information"
	MsgCountShort      = "Count cards, optionally matching a filter"
	MsgCountLong       = "Count prints the number of cards whose name fuzzy-matches the filter, or of all cards when no filter is given."
	MsgListShort       = "List cards, optionally matching a filter"
	MsgListLong        = "List prints the cards whose name fuzzy-matches the filter, sorted by pack and card key."
	MsgShowShort       = "Show a single card"
	MsgShowLong        = "Show prints the full record of a card, including its resolved base URL, icon and inputs."
	MsgPacksShort      = "List visible packs"
	MsgPacksLong       = "Packs prints every indexed pack with its friendly name and card count. Hidden packs are not listed."
	MsgCompletionShort = "Generate shell completion script"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default is ./hashdo.toml when present)"
	MsgFlagCardsDir = "Directory holding the card packs (env HASHDO_CARDS_DIR)"
	MsgFlagBaseURL  = "Base URL cards are served from (env HASHDO_BASE_URL)"
	MsgFlagFormat   = "Output format: auto, term, text or json"
)

// Long messages (embedded)
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")
)
