package types

// CountResult is the output of a card count query
type CountResult struct {
	Filter string `json:"filter,omitempty"`
	Count  int    `json:"count"`
}

// CardListResult is the output of a card listing query
type CardListResult struct {
	Filter string        `json:"filter,omitempty"`
	Cards  []CardSummary `json:"cards"`
}

// PackListResult is the output of a pack listing
type PackListResult struct {
	Packs []PackSummary `json:"packs"`
}

// VersionInfo describes the running build
type VersionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}
