package icons

import "testing"

func TestResolveEmptySpec(t *testing.T) {
	if _, ok := Resolve(""); ok {
		t.Error("Resolve(\"\") should yield no glyph")
	}
}

func TestResolveBareNameDefaultsToFilled(t *testing.T) {
	g, ok := Resolve("wifi")
	if !ok {
		t.Fatal("Resolve(wifi) should yield a glyph")
	}
	if g.Style != "filled" {
		t.Errorf("Style = %q, want filled", g.Style)
	}
	if g.Name != "WIFI" {
		t.Errorf("Name = %q, want WIFI", g.Name)
	}
}

func TestResolveStyleQualified(t *testing.T) {
	g, ok := Resolve("outlined:folder")
	if !ok {
		t.Fatal("expected a glyph")
	}
	if g.Style != "outlined" || g.Name != "FOLDER" {
		t.Errorf("got %s:%s, want outlined:FOLDER", g.Style, g.Name)
	}
}

func TestResolveCaseInsensitive(t *testing.T) {
	upper, _ := Resolve("WiFi")
	lower, _ := Resolve("wifi")
	if upper != lower {
		t.Errorf("case-insensitive lookup broken: %v vs %v", upper, lower)
	}
}

func TestResolveUnknownNameDegradesToDefault(t *testing.T) {
	g, ok := Resolve("definitely_not_an_icon")
	if !ok {
		t.Fatal("unknown name must still yield a glyph")
	}
	if g.Name != "TERMINAL" || g.Style != "filled" {
		t.Errorf("got %s:%s, want filled:TERMINAL", g.Style, g.Name)
	}
}

func TestResolveUnknownStyleDegradesToFilledDefault(t *testing.T) {
	g, ok := Resolve("papercut:wifi")
	if !ok {
		t.Fatal("unknown style must still yield a glyph")
	}
	if g.Style != "filled" || g.Name != "TERMINAL" {
		t.Errorf("got %s:%s, want filled:TERMINAL", g.Style, g.Name)
	}
}

func TestResolveAliases(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"tag", "LOCAL_OFFER"},
		{"hard_drive", "STORAGE"},
		{"cpu", "MEMORY"},
		{"copy", "CONTENT_COPY"},
		{"cut", "CONTENT_CUT"},
		{"paste", "CONTENT_PASTE"},
		{"docker", "COMPUTER"},
		{"git", "CODE"},
		{"github", "CODE"},
		{"gitlab", "CODE"},
		{"jenkins", "BUILD"},
		{"aws", "COMPUTER"},
		{"kubernetes", "COMPUTER"},
	}
	for _, tt := range tests {
		g, ok := Resolve(tt.spec)
		if !ok {
			t.Fatalf("Resolve(%q) yielded no glyph", tt.spec)
		}
		if g.Name != tt.want {
			t.Errorf("Resolve(%q).Name = %q, want %q", tt.spec, g.Name, tt.want)
		}
	}
}

func TestResolveNarrowStyleCatalog(t *testing.T) {
	// WIFI exists in filled but not in sharp; sharp must degrade to its
	// own default rather than borrowing the filled glyph.
	g, ok := Resolve("sharp:wifi")
	if !ok {
		t.Fatal("expected a glyph")
	}
	if g.Style != "sharp" || g.Name != "TERMINAL" {
		t.Errorf("got %s:%s, want sharp:TERMINAL", g.Style, g.Name)
	}
}

func TestDefault(t *testing.T) {
	g := Default("filled")
	if g.Name != "TERMINAL" {
		t.Errorf("Default(filled).Name = %q, want TERMINAL", g.Name)
	}
	if g := Default("no_such_style"); g.Style != "filled" {
		t.Errorf("Default(no_such_style).Style = %q, want filled", g.Style)
	}
}
