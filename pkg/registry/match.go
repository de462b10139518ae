package registry

import (
	"unicode"
)

// Match reports whether every character of filter appears in target in the
// same order, ignoring case. An empty filter matches everything.
func Match(filter, target string) bool {
	if filter == "" {
		return true
	}

	want := []rune(filter)
	i := 0
	for _, r := range target {
		if equalFold(r, want[i]) {
			i++
			if i == len(want) {
				return true
			}
		}
	}
	return false
}

func equalFold(a, b rune) bool {
	return a == b || unicode.ToLower(a) == unicode.ToLower(b)
}
