package models

// CategoryAll is the reserved category meaning "all projects".
// It is the default category for new projects and always matches
// the full catalog when filtering.
const CategoryAll = "全部作品"

// Project represents a single showcase entry in the catalog.
// The JSON field names match the on-disk catalog file, which is
// consumed directly by the gallery frontend.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	ProjectURL  string   `json:"projectUrl"`
	Tags        []string `json:"tags"`
	PrdURL      string   `json:"prdUrl"`
	// Category is the legacy single-category field, kept in sync with
	// Categories[0] for readers that still consult it.
	Category   string   `json:"category"`
	Categories []string `json:"categories,omitempty"`
	// SortOrder is a pointer so records written before the field existed
	// can be told apart from an explicit 0. Absent sorts last.
	SortOrder *int   `json:"sortOrder,omitempty"`
	Views     int    `json:"views"`
	CreatedAt string `json:"createdAt"`
}

// sortOrderLast is the sort key for records without a SortOrder.
const sortOrderLast = int(^uint(0) >> 1)

// SortKey returns the value List and Filter order by.
func (p Project) SortKey() int {
	if p.SortOrder == nil {
		return sortOrderLast
	}
	return *p.SortOrder
}

// EffectiveCategories returns Categories, falling back to the legacy
// Category field when the multi-value field is absent or empty.
func (p Project) EffectiveCategories() []string {
	if len(p.Categories) > 0 {
		return p.Categories
	}
	if p.Category != "" {
		return []string{p.Category}
	}
	return nil
}
