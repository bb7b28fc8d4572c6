package registry

import (
	"strings"
	"testing"
)

func TestTools_CatalogShape(t *testing.T) {
	catalog := Tools()
	if len(catalog) != 6 {
		t.Fatalf("Expected 6 tools, got %d", len(catalog))
	}

	expected := map[string]struct {
		method string
		path   string
	}{
		"ingest_event":       {"POST", "/ingest"},
		"list_events":        {"GET", "/events"},
		"explain_event":      {"GET", "/events/{eventId}/explain"},
		"alt_route":          {"POST", "/routes/alt"},
		"set_geofence_alert": {"POST", "/alerts/geofence"},
		"simulate_replay":    {"POST", "/simulate/replay"},
	}

	seen := map[string]bool{}
	for _, tool := range catalog {
		want, ok := expected[tool.Name]
		if !ok {
			t.Errorf("Unexpected tool %q in catalog", tool.Name)
			continue
		}
		if seen[tool.Name] {
			t.Errorf("Duplicate tool %q in catalog", tool.Name)
		}
		seen[tool.Name] = true
		if tool.Method != want.method {
			t.Errorf("Tool %q: expected method %s, got %s", tool.Name, want.method, tool.Method)
		}
		if tool.Path != want.path {
			t.Errorf("Tool %q: expected path %s, got %s", tool.Name, want.path, tool.Path)
		}
		if tool.Description == "" {
			t.Errorf("Tool %q has no description", tool.Name)
		}
	}
	if len(seen) != len(expected) {
		t.Errorf("Catalog missing tools: got %d of %d", len(seen), len(expected))
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("alt_route"); !ok {
		t.Error("Expected to find alt_route")
	}
	if _, ok := Lookup("drop_tables"); ok {
		t.Error("Expected lookup miss for unregistered tool")
	}
}

func TestTools_ReturnsCopy(t *testing.T) {
	a := Tools()
	a[0].Name = "mutated"
	b := Tools()
	if b[0].Name == "mutated" {
		t.Error("Tools() must return a copy, not the underlying table")
	}
}

func TestValidateString_MinLen(t *testing.T) {
	p := Param{Name: "text", Required: true, MinLen: 3}

	if err := p.ValidateString(""); err == nil {
		t.Error("Expected error for missing required param")
	}
	if err := p.ValidateString("ab"); err == nil {
		t.Error("Expected error for text shorter than 3 characters")
	}
	if err := p.ValidateString("abc"); err != nil {
		t.Errorf("Unexpected error for valid text: %v", err)
	}
}

func TestValidateString_OptionalEmpty(t *testing.T) {
	p := Param{Name: "mediaUrl", IsURL: true}
	if err := p.ValidateString(""); err != nil {
		t.Errorf("Absent optional param must pass, got: %v", err)
	}
}

func TestValidateString_URL(t *testing.T) {
	p := Param{Name: "mediaUrl", IsURL: true}

	valid := []string{
		"https://example.com/photo.jpg",
		"http://cdn.example.com/v/clip.mp4?sig=abc",
	}
	for _, u := range valid {
		if err := p.ValidateString(u); err != nil {
			t.Errorf("Expected %q to validate, got: %v", u, err)
		}
	}

	invalid := []string{
		"not a url",
		"example.com/photo.jpg",
		"://missing-scheme",
	}
	for _, u := range invalid {
		if err := p.ValidateString(u); err == nil {
			t.Errorf("Expected %q to fail URL validation", u)
		}
	}
}

func TestResolvePath_Escapes(t *testing.T) {
	tool, ok := Lookup("explain_event")
	if !ok {
		t.Fatal("explain_event not registered")
	}

	got := tool.ResolvePath("eventId", "evt/123 x")
	if strings.Contains(got, " ") || strings.Contains(got, "evt/123") {
		t.Errorf("Path value not URL-encoded: %s", got)
	}
	if got != "/events/"+"evt%2F123%20x"+"/explain" {
		t.Errorf("Unexpected resolved path: %s", got)
	}
}

func TestNumericDefaults(t *testing.T) {
	tool, _ := Lookup("set_geofence_alert")
	for _, p := range tool.Params {
		if p.Default == nil {
			t.Errorf("Param %q of set_geofence_alert must carry a default", p.Name)
		}
	}

	route, _ := Lookup("alt_route")
	for _, p := range route.Params {
		if p.Default == nil {
			t.Errorf("Param %q of alt_route must carry a default", p.Name)
		}
	}
}
