package main

import (
	"errors"
	"testing"
)

func TestPizzaEqual(t *testing.T) {
	margherita := Pizza{Name: "Margherita", Ingredients: []string{"tomato sauce", "mozzarella", "tomatoes"}, Glyph: "🧀", Size: SizeL}
	pepperoni := Pizza{Name: "Pepperoni", Ingredients: []string{"tomato sauce", "mozzarella", "pepperoni"}, Glyph: "🍕", Size: SizeL}

	bigMargherita := margherita
	bigMargherita.Size = SizeXL
	bigMargherita.Glyph = ""

	tests := []struct {
		name string
		a, b Pizza
		want bool
	}{
		{"same pizza", margherita, margherita.clone(), true},
		{"different pizza", margherita, pepperoni, false},
		{"size and glyph ignored", margherita, bigMargherita, true},
		{"ingredient order matters", margherita, Pizza{Name: "Margherita", Ingredients: []string{"mozzarella", "tomato sauce", "tomatoes"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Fatalf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMenuItemsOrder(t *testing.T) {
	items := NewMenu().Items()
	if len(items) != 6 {
		t.Fatalf("expected 6 menu entries, got %v", len(items))
	}

	want := []struct {
		name string
		size Size
	}{
		{"Margherita", SizeL}, {"Pepperoni", SizeL}, {"Hawaiian", SizeL},
		{"Margherita", SizeXL}, {"Pepperoni", SizeXL}, {"Hawaiian", SizeXL},
	}
	for i, w := range want {
		if items[i].Name != w.name || items[i].Size != w.size {
			t.Errorf("entry %v = %v (%v), want %v (%v)", i, items[i].Name, items[i].Size, w.name, w.size)
		}
		if len(items[i].Ingredients) == 0 {
			t.Errorf("entry %v has no ingredients", i)
		}
	}
}

func TestMenuItemsReturnsCopies(t *testing.T) {
	m := NewMenu()
	items := m.Items()
	items[0].Ingredients[0] = "ketchup"
	items[0].Name = "Changed"

	again := m.Items()
	if again[0].Name != "Margherita" || again[0].Ingredients[0] != "tomato sauce" {
		t.Fatalf("menu was mutated through Items(): %v", again[0])
	}
}

func TestMenuFind(t *testing.T) {
	m := NewMenu()

	p, err := m.Find("pepperoni", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Pepperoni" || p.Size != SizeL {
		t.Fatalf("got %v, want the large Pepperoni", p)
	}

	p, err = m.Find("HAWAIIAN", SizeXL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Size != SizeXL || p.Glyph != "🍍" {
		t.Fatalf("got %v, want the XL Hawaiian", p)
	}

	if _, err := m.Find("Not a pizza", ""); !errors.Is(err, ErrPizzaNotFound) {
		t.Fatalf("expected ErrPizzaNotFound, got %v", err)
	}
	if _, err := m.Find("Margherita", Size("XXL")); !errors.Is(err, ErrPizzaNotFound) {
		t.Fatalf("expected ErrPizzaNotFound for unknown size, got %v", err)
	}
}

func TestMenuSizes(t *testing.T) {
	sizes := NewMenu().Sizes("margherita")
	if len(sizes) != 2 || sizes[0] != SizeL || sizes[1] != SizeXL {
		t.Fatalf("Sizes() = %v", sizes)
	}
	if sizes := NewMenu().Sizes("calzone"); len(sizes) != 0 {
		t.Fatalf("expected no sizes, got %v", sizes)
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    Size
		wantErr bool
	}{
		{"L", SizeL, false},
		{"xl", SizeXL, false},
		{" XL ", SizeXL, false},
		{"", "", true},
		{"M", "", true},
		{"XXL", "", true},
	}

	for _, tt := range tests {
		got, err := ParseSize(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidSize) {
				t.Errorf("ParseSize(%q) error = %v, want ErrInvalidSize", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseSize(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestPizzaString(t *testing.T) {
	p, err := NewMenu().Find("Margherita", SizeXL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Margherita🧀 (XL): tomato sauce, mozzarella, tomatoes"
	if p.String() != want {
		t.Fatalf("String() = %q, want %q", p.String(), want)
	}
}

func TestMenuListing(t *testing.T) {
	want := []string{
		"Margherita🧀 (L, XL): tomato sauce, mozzarella, tomatoes",
		"Pepperoni🍕 (L, XL): tomato sauce, mozzarella, pepperoni",
		"Hawaiian🍍 (L, XL): tomato sauce, mozzarella, chicken, pineapples",
	}

	got := NewMenu().Listing()
	if len(got) != len(want) {
		t.Fatalf("Listing() = %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %v = %q, want %q", i, got[i], want[i])
		}
	}
}
