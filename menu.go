// This file contains the pizza catalog: the Pizza value type, sizes,
// and the fixed Menu that answers lookups.

package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrPizzaNotFound = errors.New("pizza not on the menu")
	ErrInvalidSize   = errors.New("invalid pizza size")
)

// Size is the size variant of a pizza.
type Size string

const (
	SizeL  Size = "L"
	SizeXL Size = "XL"
)

var validate = validator.New()

// ParseSize converts user input to a Size. Only L and XL are accepted.
func ParseSize(s string) (Size, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if err := validate.Var(s, "required,oneof=L XL"); err != nil {
		return "", fmt.Errorf("%w: %q (choose L or XL)", ErrInvalidSize, s)
	}
	return Size(s), nil
}

// Pizza is a single catalog entry.
type Pizza struct {
	Name        string
	Ingredients []string
	Glyph       string
	Size        Size
}

// Equal reports whether two pizzas share a name and ingredient list.
// Size and glyph are not compared.
func (p Pizza) Equal(other Pizza) bool {
	return p.Name == other.Name && slices.Equal(p.Ingredients, other.Ingredients)
}

func (p Pizza) String() string {
	return fmt.Sprintf("%v%v (%v): %v", p.Name, p.Glyph, p.Size, strings.Join(p.Ingredients, ", "))
}

func (p Pizza) clone() Pizza {
	p.Ingredients = slices.Clone(p.Ingredients)
	return p
}

// recipe describes one kind of pizza independent of its size.
type recipe struct {
	name        string
	ingredients []string
	glyph       string
}

var recipes = []recipe{
	{"Margherita", []string{"tomato sauce", "mozzarella", "tomatoes"}, "🧀"},
	{"Pepperoni", []string{"tomato sauce", "mozzarella", "pepperoni"}, "🍕"},
	{"Hawaiian", []string{"tomato sauce", "mozzarella", "chicken", "pineapples"}, "🍍"},
}

var sizes = []Size{SizeL, SizeXL}

// newPizza builds the catalog entry for a recipe in the given size.
func newPizza(r recipe, size Size) Pizza {
	if len(r.ingredients) == 0 {
		panic(fmt.Sprintf("Recipe %v has no ingredients.", r.name))
	}
	return Pizza{
		Name:        r.name,
		Ingredients: slices.Clone(r.ingredients),
		Glyph:       r.glyph,
		Size:        size,
	}
}

// Menu is the immutable list of orderable pizzas.
type Menu struct {
	items []Pizza
}

// NewMenu builds the catalog. Entries are ordered by size first, then by recipe.
func NewMenu() *Menu {
	m := &Menu{}
	for _, size := range sizes {
		for _, r := range recipes {
			m.items = append(m.items, newPizza(r, size))
		}
	}
	return m
}

// Items returns a copy of every entry in declaration order.
func (m *Menu) Items() []Pizza {
	out := make([]Pizza, 0, len(m.items))
	for _, p := range m.items {
		out = append(out, p.clone())
	}
	return out
}

// Find looks up a pizza by name, ignoring case. A zero size matches the
// first entry with that name.
func (m *Menu) Find(name string, size Size) (Pizza, error) {
	name = strings.TrimSpace(name)
	for _, p := range m.items {
		if !strings.EqualFold(p.Name, name) {
			continue
		}
		if size == "" || p.Size == size {
			return p.clone(), nil
		}
	}
	return Pizza{}, fmt.Errorf("%w: %q", ErrPizzaNotFound, name)
}

// Sizes lists the sizes a pizza is offered in.
func (m *Menu) Sizes(name string) []Size {
	var out []Size
	for _, p := range m.items {
		if strings.EqualFold(p.Name, name) {
			out = append(out, p.Size)
		}
	}
	return out
}

// Listing renders one line per pizza with every size it comes in, e.g.
// "Margherita🧀 (L, XL): tomato sauce, mozzarella, tomatoes".
func (m *Menu) Listing() []string {
	var out []string
	seen := map[string]bool{}
	for _, p := range m.items {
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true

		var sizes []string
		for _, s := range m.Sizes(p.Name) {
			sizes = append(sizes, string(s))
		}
		out = append(out, fmt.Sprintf("%v%v (%v): %v", p.Name, p.Glyph, strings.Join(sizes, ", "), strings.Join(p.Ingredients, ", ")))
	}
	return out
}
