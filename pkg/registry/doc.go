// Package registry builds and queries the in-memory card index.
//
// Build scans the cards directory once, loads every visible pack and its
// cards, and returns a Registry. A Registry never changes after Build
// returns and is safe for concurrent use:
//
//	reg, err := registry.Init("https://cards.example.com", "/srv/cards")
//	if err != nil {
//		// a broken pack or unreadable directory: do not serve
//	}
//	reg.Count("")          // all cards, memoized
//	reg.Cards("wthr")      // fuzzy filtered, sorted by pack then card
//	reg.Card("weather", "today")
//
// Building is all-or-nothing. Directories without a manifest, manifests
// without a pack section and hidden packs are skipped; any other problem
// aborts the build and no Registry is returned.
package registry
