package domain

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Suggest returns up to three known names that fuzzily match input
func Suggest(input string, known []string) []string {
	if input == "" {
		return nil
	}
	matches := fuzzy.Find(strings.ToLower(input), known)
	suggestions := make([]string, 0, 3)
	for _, m := range matches {
		suggestions = append(suggestions, m.Str)
		if len(suggestions) == 3 {
			break
		}
	}
	if len(suggestions) > 0 {
		return suggestions
	}

	// fall back to prefix matches on the first segment, e.g. "polygon"
	prefix := strings.SplitN(strings.ToLower(input), "-", 2)[0]
	for _, name := range known {
		if strings.HasPrefix(name, prefix) {
			suggestions = append(suggestions, name)
			if len(suggestions) == 3 {
				break
			}
		}
	}
	return suggestions
}
