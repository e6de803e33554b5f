package home

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

const maxNameDistance = 2

// MatchProfiles narrows profiles to those whose name fits query. Substring
// hits come first, then names within a small edit distance; collection order
// is kept inside each group.
func MatchProfiles(profiles []Profile, query string) []Profile {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]Profile, len(profiles))
		copy(out, profiles)
		return out
	}
	var exact, near []Profile
	for _, p := range profiles {
		name := strings.ToLower(p.Name)
		switch {
		case strings.Contains(name, q):
			exact = append(exact, p)
		case levenshtein.ComputeDistance(name, q) <= maxNameDistance:
			near = append(near, p)
		}
	}
	return append(exact, near...)
}
