package service

import (
	"errors"
	"testing"

	"github.com/Parindya2/TripRoute/internal/domain"
)

func testCatalog() []domain.Destination {
	return []domain.Destination{
		{ID: "1", Name: "London", Location: "London, England", Category: "city"},
		{ID: "2", Name: "Edinburgh", Location: "Edinburgh, Scotland", Category: "city"},
		{ID: "7", Name: "Brighton", Location: "Brighton, England", Category: "beach"},
	}
}

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	svc := NewDestinationService(testCatalog())

	got := svc.Filter("", domain.CategoryAll)
	if len(got) != 3 {
		t.Fatalf("expected all 3 destinations, got %d", len(got))
	}
}

func TestFilterQueryMatchesNameAndLocation(t *testing.T) {
	svc := NewDestinationService(testCatalog())

	t.Run("case-insensitive name match", func(t *testing.T) {
		got := svc.Filter("LONDON", domain.CategoryAll)
		if len(got) != 1 || got[0].ID != "1" {
			t.Fatalf("expected London only, got %v", got)
		}
	})

	t.Run("location substring match", func(t *testing.T) {
		got := svc.Filter("scotland", domain.CategoryAll)
		if len(got) != 1 || got[0].ID != "2" {
			t.Fatalf("expected Edinburgh only, got %v", got)
		}
	})

	t.Run("no match yields empty non-nil slice", func(t *testing.T) {
		got := svc.Filter("tokyo", domain.CategoryAll)
		if got == nil || len(got) != 0 {
			t.Fatalf("expected empty slice, got %v", got)
		}
	})
}

func TestFilterCategoryComposesWithQuery(t *testing.T) {
	svc := NewDestinationService(testCatalog())

	got := svc.Filter("england", "beach")
	if len(got) != 1 || got[0].ID != "7" {
		t.Fatalf("expected Brighton only, got %v", got)
	}

	got = svc.Filter("scotland", "beach")
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}

	// Category names arrive capitalized from the UI.
	got = svc.Filter("", "Beach")
	if len(got) != 1 || got[0].ID != "7" {
		t.Fatalf("expected Brighton for capitalized category, got %v", got)
	}
}

func TestFilteredUsesStoredState(t *testing.T) {
	svc := NewDestinationService(testCatalog())

	svc.SetSearchQuery("brigh")
	if got := svc.Filtered(); len(got) != 1 || got[0].ID != "7" {
		t.Fatalf("expected Brighton, got %v", got)
	}

	svc.SetCategory("city")
	if got := svc.Filtered(); len(got) != 0 {
		t.Fatalf("expected empty after AND-composed filters, got %v", got)
	}

	svc.ClearFilters()
	if got := svc.Filtered(); len(got) != 3 {
		t.Fatalf("expected full catalog after ClearFilters, got %d", len(got))
	}
}

func TestByID(t *testing.T) {
	svc := NewDestinationService(testCatalog())

	d, err := svc.ByID("2")
	if err != nil {
		t.Fatalf("ByID returned error: %v", err)
	}
	if d.Name != "Edinburgh" {
		t.Fatalf("unexpected destination %+v", d)
	}

	if _, err := svc.ByID("99"); !errors.Is(err, ErrDestinationNotFound) {
		t.Fatalf("expected ErrDestinationNotFound, got %v", err)
	}
}
