package model

import (
	"testing"
)

func TestTagRegistry_Order(t *testing.T) {
	r := NewTagRegistry()
	r.Add("rent", CategoryHousing)
	r.Add("fuel", CategoryTransportation)
	r.Add("movie", CategoryEntertainment)

	entries := r.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	want := []string{"rent", "fuel", "movie"}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("entry %d: got %q, want %q", i, entries[i].Name, name)
		}
	}
}

func TestTagRegistry_ReAddKeepsPosition(t *testing.T) {
	r := NewTagRegistry()
	r.Add("rent", CategoryHousing)
	r.Add("fuel", CategoryTransportation)
	r.Add("rent", CategoryOther)

	entries := r.Entries()
	if entries[0].Name != "rent" || entries[0].Category != CategoryOther {
		t.Errorf("re-added tag should keep position 0 with new category, got %+v", entries[0])
	}
	if r.Len() != 2 {
		t.Errorf("expected 2 entries after re-add, got %d", r.Len())
	}
}

func TestTagRegistry_Remove(t *testing.T) {
	r := NewTagRegistry()
	r.Add("rent", CategoryHousing)
	r.Add("fuel", CategoryTransportation)
	r.Add("movie", CategoryEntertainment)

	if !r.Remove("fuel") {
		t.Fatal("expected Remove to report true for existing tag")
	}
	if r.Remove("fuel") {
		t.Fatal("expected Remove to report false for missing tag")
	}

	// Lookup must still work for entries shifted by the removal.
	tag, ok := r.Lookup("movie")
	if !ok || tag.Category != CategoryEntertainment {
		t.Errorf("lookup after remove: got %+v ok=%v", tag, ok)
	}
	entries := r.Entries()
	if len(entries) != 2 || entries[1].Name != "movie" {
		t.Errorf("unexpected entries after remove: %+v", entries)
	}
}

func TestDefaultTagRegistry(t *testing.T) {
	r := DefaultTagRegistry()
	if r.Len() != 11 {
		t.Fatalf("expected 11 default tags, got %d", r.Len())
	}
	first := r.Entries()[0]
	if first.Name != "groceries" || first.Category != CategoryFood {
		t.Errorf("unexpected first default tag: %+v", first)
	}
}

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		code    string
		want    Currency
		wantErr bool
	}{
		{code: "INR", want: CurrencyINR},
		{code: "SGD", want: CurrencySGD},
		{code: "inr", wantErr: true},
		{code: "BTC", wantErr: true},
		{code: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseCurrency(tt.code)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseCurrency(%q): expected error", tt.code)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCurrency(%q): %v", tt.code, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCurrency(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	if _, err := ParseCategory("FOOD"); err != nil {
		t.Errorf("ParseCategory(FOOD): %v", err)
	}
	if _, err := ParseCategory("Food"); err == nil {
		t.Error("ParseCategory(Food): expected error for display label")
	}
	if len(Categories()) != 11 {
		t.Errorf("expected 11 categories, got %d", len(Categories()))
	}
}
