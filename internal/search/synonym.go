package search

import (
	"strings"

	"github.com/falyronencom/Restaurant-Guide-v2-sub003/internal/establishment"
)

// TagSet is what a synonym keyword expands to.
type TagSet struct {
	Categories []string
	Cuisines   []string
}

// SynonymTable maps lowercase free-text keywords to category/cuisine
// tags. A flat static lookup is enough at catalog scale; no inverted
// index needed.
type SynonymTable map[string]TagSet

// DefaultSynonyms covers the common food and venue keywords of the
// catalog's market, in both Latin and Cyrillic spellings.
func DefaultSynonyms() SynonymTable {
	return SynonymTable{
		"pizza":    {Categories: []string{"pizzeria"}, Cuisines: []string{"italian"}},
		"пицца":    {Categories: []string{"pizzeria"}, Cuisines: []string{"italian"}},
		"pasta":    {Cuisines: []string{"italian"}},
		"паста":    {Cuisines: []string{"italian"}},
		"sushi":    {Categories: []string{"sushi_bar"}, Cuisines: []string{"japanese"}},
		"суши":     {Categories: []string{"sushi_bar"}, Cuisines: []string{"japanese"}},
		"роллы":    {Cuisines: []string{"japanese"}},
		"burger":   {Categories: []string{"fast_food"}, Cuisines: []string{"american"}},
		"бургер":   {Categories: []string{"fast_food"}, Cuisines: []string{"american"}},
		"doner":    {Categories: []string{"fast_food"}, Cuisines: []string{"turkish"}},
		"донер":    {Categories: []string{"fast_food"}, Cuisines: []string{"turkish"}},
		"kebab":    {Cuisines: []string{"turkish"}},
		"кебаб":    {Cuisines: []string{"turkish"}},
		"plov":     {Cuisines: []string{"uzbek"}},
		"плов":     {Cuisines: []string{"uzbek"}},
		"lagman":   {Cuisines: []string{"uzbek"}},
		"лагман":   {Cuisines: []string{"uzbek"}},
		"shashlik": {Cuisines: []string{"uzbek", "caucasian"}},
		"шашлык":   {Cuisines: []string{"uzbek", "caucasian"}},
		"steak":    {Categories: []string{"steakhouse"}},
		"стейк":    {Categories: []string{"steakhouse"}},
		"coffee":   {Categories: []string{"cafe", "coffee_shop"}},
		"кофе":     {Categories: []string{"cafe", "coffee_shop"}},
		"чай":      {Categories: []string{"teahouse"}},
		"bar":      {Categories: []string{"bar"}},
		"бар":      {Categories: []string{"bar"}},
		"karaoke":  {Categories: []string{"karaoke"}},
		"караоке":  {Categories: []string{"karaoke"}},
	}
}

// Expand looks up the whole query and each whitespace-separated token.
// Expansion is additive over all matched keys.
func (t SynonymTable) Expand(text string) TagSet {
	var tags TagSet
	query := strings.ToLower(strings.TrimSpace(text))
	if query == "" {
		return tags
	}

	seen := map[string]bool{}
	lookup := func(key string) {
		if seen[key] {
			return
		}
		seen[key] = true
		if ts, ok := t[key]; ok {
			tags.Categories = append(tags.Categories, ts.Categories...)
			tags.Cuisines = append(tags.Cuisines, ts.Cuisines...)
		}
	}

	lookup(query)
	for _, token := range strings.Fields(query) {
		lookup(token)
	}
	return tags
}

// matchText keeps candidates whose name, description, categories or
// cuisines contain the query (case-insensitive substring), or whose
// tags equal a synonym expansion of the query. Empty text is a no-op.
func matchText(matches []Match, text string, synonyms SynonymTable) []Match {
	query := strings.ToLower(strings.TrimSpace(text))
	if query == "" {
		return matches
	}

	expanded := synonyms.Expand(query)

	out := matches[:0:0]
	for _, m := range matches {
		if matchesText(m.Establishment, query, expanded) {
			out = append(out, m)
		}
	}
	return out
}

func matchesText(e *establishment.Establishment, query string, expanded TagSet) bool {
	if strings.Contains(strings.ToLower(e.Name), query) ||
		strings.Contains(strings.ToLower(e.Description), query) {
		return true
	}
	for _, c := range e.Categories {
		if strings.Contains(strings.ToLower(c), query) {
			return true
		}
	}
	for _, c := range e.Cuisines {
		if strings.Contains(strings.ToLower(c), query) {
			return true
		}
	}
	// Synonym expansion is additive on top of the literal test.
	return intersects(e.Categories, expanded.Categories) ||
		intersects(e.Cuisines, expanded.Cuisines)
}
