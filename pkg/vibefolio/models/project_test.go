package models

import (
	"encoding/json"
	"testing"
)

func intPtr(n int) *int {
	return &n
}

func TestSortKey(t *testing.T) {
	withOrder := Project{SortOrder: intPtr(0)}
	if withOrder.SortKey() != 0 {
		t.Errorf("Expected explicit 0 to sort as 0, got %d", withOrder.SortKey())
	}

	legacy := Project{}
	if legacy.SortKey() <= 1000000 {
		t.Errorf("Expected missing sortOrder to sort last, got %d", legacy.SortKey())
	}
}

func TestEffectiveCategories(t *testing.T) {
	multi := Project{Category: "Old", Categories: []string{"Games", "Tools"}}
	got := multi.EffectiveCategories()
	if len(got) != 2 || got[0] != "Games" {
		t.Errorf("Expected multi-value field to win, got %v", got)
	}

	legacy := Project{Category: "Games"}
	got = legacy.EffectiveCategories()
	if len(got) != 1 || got[0] != "Games" {
		t.Errorf("Expected legacy fallback [Games], got %v", got)
	}

	empty := Project{}
	if got := empty.EffectiveCategories(); got != nil {
		t.Errorf("Expected nil for uncategorized record, got %v", got)
	}
}

// Records written before sortOrder and categories existed must parse and
// keep their absence observable.
func TestUnmarshalLegacyRecord(t *testing.T) {
	data := []byte(`{
		"id": "p1",
		"title": "Old",
		"description": "d",
		"imageUrl": "",
		"projectUrl": "#",
		"tags": [],
		"prdUrl": "",
		"category": "Games",
		"views": 3,
		"createdAt": "2025-01-01T00:00:00Z"
	}`)

	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if p.SortOrder != nil {
		t.Error("Expected sortOrder to stay absent")
	}
	if p.Categories != nil {
		t.Error("Expected categories to stay absent")
	}
	cats := p.EffectiveCategories()
	if len(cats) != 1 || cats[0] != "Games" {
		t.Errorf("Expected legacy category fallback, got %v", cats)
	}
}
