package catalog

import "testing"

func TestLoad(t *testing.T) {
	destinations, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(destinations) != 8 {
		t.Fatalf("expected 8 destinations, got %d", len(destinations))
	}

	byID := make(map[string]bool)
	for _, d := range destinations {
		if byID[d.ID] {
			t.Fatalf("duplicate destination id %q", d.ID)
		}
		byID[d.ID] = true

		if d.Name == "" || d.Location == "" || d.Category == "" {
			t.Fatalf("destination %q missing required fields", d.ID)
		}
		if d.Latitude == 0 && d.Longitude == 0 {
			t.Fatalf("destination %q missing coordinates", d.ID)
		}
	}

	if !byID["1"] || !byID["8"] {
		t.Fatal("expected destination ids 1 through 8")
	}
}
