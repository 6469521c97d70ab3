package recipe

import (
	"sort"
	"strings"
)

// Match pairs a public recipe with how many of the user's ingredient
// names occur in its ingredient text.
type Match struct {
	Recipe PublicRecipe
	Count  int
}

// MatchByIngredients scores every recipe in the corpus by the number of
// ingredient names contained in its raw ingredient text, drops recipes
// with no matches, and returns the rest ordered by descending count.
//
// Containment is plain substring search, not tokenized: "파" also
// matches inside "대파". That is the established behavior of the
// matching heuristic and callers rely on its recall.
//
// The sort is stable: recipes with equal counts keep their corpus
// relative order, so results are deterministic for a given snapshot.
func MatchByIngredients(corpus []PublicRecipe, ingredientNames []string) []Match {
	matches := make([]Match, 0, len(corpus))
	for _, r := range corpus {
		count := 0
		for _, name := range ingredientNames {
			if name == "" {
				continue
			}
			if strings.Contains(r.Ingredients, name) {
				count++
			}
		}
		if count > 0 {
			matches = append(matches, Match{Recipe: r, Count: count})
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Count > matches[b].Count
	})

	return matches
}

// TopMatches returns at most limit best matches
func TopMatches(corpus []PublicRecipe, ingredientNames []string, limit int) []Match {
	matches := MatchByIngredients(corpus, ingredientNames)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
