package ui

import (
	"Cocktail-Catalog/domain"
	"strings"
)

// Search filters entries by a case-insensitive substring of name,
// ingredients, recipe or comment. A blank term matches everything.
func Search(entries []domain.Entry, term string) []domain.Entry {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return entries
	}

	matches := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		if matchesTerm(e, term) {
			matches = append(matches, e)
		}
	}
	return matches
}

func matchesTerm(e domain.Entry, term string) bool {
	fields := []string{e.Name, e.Ingredients, e.Recipe}
	if e.Comment != nil {
		fields = append(fields, *e.Comment)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
