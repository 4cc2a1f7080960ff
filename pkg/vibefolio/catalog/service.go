package catalog

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jolin0223/vibefolio/pkg/vibefolio/models"
	"github.com/jolin0223/vibefolio/pkg/vibefolio/store"
)

// ErrNotFound is returned by mutating operations referencing an unknown id.
var ErrNotFound = errors.New("project not found")

// ValidationError represents a validation error
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Service implements the catalog operations on top of the store.
type Service struct {
	store *store.Store
}

// NewService creates a catalog service backed by st.
func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// CreateInput carries the caller-supplied fields for Create.
// SortOrder is a pointer so an explicit 0 can be told apart from absence.
type CreateInput struct {
	Title       string
	Description string
	ImageURL    string
	ProjectURL  string
	Tags        []string
	PrdURL      string
	Categories  []string
	SortOrder   *int
}

// UpdateInput carries a partial update. Pointer fields overwrite whenever
// present, even when empty; the plain string fields only overwrite when
// non-empty (an empty title means "keep the old title").
type UpdateInput struct {
	Title       string
	Description string
	ImageURL    string
	ProjectURL  string
	Tags        *[]string
	PrdURL      *string
	Categories  *[]string
	SortOrder   *int
}

// List returns the whole catalog sorted ascending by sort order.
// Records with equal sort order keep their storage order.
func (s *Service) List() ([]models.Project, error) {
	projects, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].SortKey() < projects[j].SortKey()
	})

	return projects, nil
}

// Create validates the input, fills in defaults, and inserts the new
// project at the head of storage order (most recent first).
func (s *Service) Create(in CreateInput) (models.Project, error) {
	if strings.TrimSpace(in.Title) == "" {
		return models.Project{}, &ValidationError{"Title is required"}
	}
	if strings.TrimSpace(in.Description) == "" {
		return models.Project{}, &ValidationError{"Description is required"}
	}

	categories := in.Categories
	if len(categories) == 0 {
		categories = []string{models.CategoryAll}
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	projectURL := in.ProjectURL
	if projectURL == "" {
		projectURL = "#"
	}

	sortOrder := 0
	if in.SortOrder != nil {
		sortOrder = *in.SortOrder
	}

	project := models.Project{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		ProjectURL:  projectURL,
		Tags:        tags,
		PrdURL:      in.PrdURL,
		Category:    categories[0],
		Categories:  categories,
		SortOrder:   &sortOrder,
		Views:       0,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	err := s.store.Mutate(func(projects []models.Project) ([]models.Project, error) {
		return append([]models.Project{project}, projects...), nil
	})
	if err != nil {
		return models.Project{}, err
	}

	return project, nil
}

// Update applies a partial update to the project with the given id.
func (s *Service) Update(id string, in UpdateInput) (models.Project, error) {
	var updated models.Project

	err := s.store.Mutate(func(projects []models.Project) ([]models.Project, error) {
		for i := range projects {
			if projects[i].ID != id {
				continue
			}

			p := &projects[i]
			if in.Title != "" {
				p.Title = in.Title
			}
			if in.Description != "" {
				p.Description = in.Description
			}
			if in.ImageURL != "" {
				p.ImageURL = in.ImageURL
			}
			if in.ProjectURL != "" {
				p.ProjectURL = in.ProjectURL
			}
			if in.Tags != nil {
				p.Tags = *in.Tags
			}
			if in.PrdURL != nil {
				p.PrdURL = *in.PrdURL
			}
			if in.Categories != nil {
				p.Categories = *in.Categories
				// Keep the legacy field in sync for old readers
				if len(p.Categories) > 0 {
					p.Category = p.Categories[0]
				} else {
					p.Category = models.CategoryAll
				}
			}
			if in.SortOrder != nil {
				p.SortOrder = in.SortOrder
			}

			updated = *p
			return projects, nil
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return models.Project{}, err
	}

	return updated, nil
}

// Delete removes the project with the given id.
func (s *Service) Delete(id string) error {
	return s.store.Mutate(func(projects []models.Project) ([]models.Project, error) {
		kept := make([]models.Project, 0, len(projects))
		for _, p := range projects {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		if len(kept) == len(projects) {
			return nil, ErrNotFound
		}
		return kept, nil
	})
}

// IncrementView bumps the view counter for the given id and returns the
// new count. This runs under the store mutex, so sequential and in-process
// concurrent increments are never lost.
func (s *Service) IncrementView(id string) (int, error) {
	views := 0

	err := s.store.Mutate(func(projects []models.Project) ([]models.Project, error) {
		for i := range projects {
			if projects[i].ID == id {
				projects[i].Views++
				views = projects[i].Views
				return projects, nil
			}
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return 0, err
	}

	return views, nil
}
