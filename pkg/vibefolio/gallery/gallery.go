// Package gallery holds the pure presentation helpers the public gallery
// renders with: category filtering, category counts, and the category bar
// itself. Everything here operates on an in-memory snapshot of the catalog
// and never touches storage.
package gallery

import (
	"sort"

	"github.com/jolin0223/vibefolio/pkg/vibefolio/models"
)

// Filter returns the projects visible under the given category, sorted
// ascending by sort order. The "all projects" category returns everything.
func Filter(projects []models.Project, category string) []models.Project {
	var filtered []models.Project
	if category == models.CategoryAll {
		filtered = append(filtered, projects...)
	} else {
		for _, p := range projects {
			if matches(p, category) {
				filtered = append(filtered, p)
			}
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].SortKey() < filtered[j].SortKey()
	})

	return filtered
}

// Count returns how many projects the given category matches.
// The "all projects" category counts the full catalog.
func Count(projects []models.Project, category string) int {
	if category == models.CategoryAll {
		return len(projects)
	}

	n := 0
	for _, p := range projects {
		if matches(p, category) {
			n++
		}
	}
	return n
}

// Categories returns the category bar labels: the "all projects" category
// first, then each distinct category in the order it first appears.
func Categories(projects []models.Project) []string {
	categories := []string{models.CategoryAll}
	seen := map[string]bool{models.CategoryAll: true}

	for _, p := range projects {
		for _, c := range p.EffectiveCategories() {
			if c == "" || seen[c] {
				continue
			}
			seen[c] = true
			categories = append(categories, c)
		}
	}

	return categories
}

// matches reports whether the project belongs to the category, consulting
// the legacy single-category field when the multi-value one is empty.
func matches(p models.Project, category string) bool {
	for _, c := range p.EffectiveCategories() {
		if c == category {
			return true
		}
	}
	return false
}
