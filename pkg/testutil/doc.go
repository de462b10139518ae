// Package testutil provides utilities for testing hashdo components.
//
// CardsTree builds a cards directory (packs, manifests, card definitions)
// either on an in-memory afero filesystem or on disk under t.TempDir().
// All test data should be defined inline, not in external files.
package testutil
