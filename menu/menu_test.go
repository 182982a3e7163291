package menu

import (
	"context"
	"strings"
	"testing"
)

type fakeCatalog struct {
	items   []Item
	inserts int
}

func (f *fakeCatalog) List(_ context.Context) ([]Item, error) {
	return f.items, nil
}

func (f *fakeCatalog) Count(_ context.Context) (int, error) {
	return len(f.items), nil
}

func (f *fakeCatalog) Insert(_ context.Context, item Item) error {
	f.inserts++
	f.items = append(f.items, item)
	return nil
}

func TestSeedPopulatesEmptyCatalog(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalog{}
	if err := Seed(context.Background(), catalog); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if catalog.inserts != len(DefaultItems) {
		t.Fatalf("inserted %d items, want %d", catalog.inserts, len(DefaultItems))
	}
}

func TestSeedLeavesNonEmptyCatalogAlone(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalog{items: []Item{{Name: "House Special", Price: 20}}}
	if err := Seed(context.Background(), catalog); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if catalog.inserts != 0 {
		t.Fatalf("seed must not insert into a non-empty catalog, inserted %d", catalog.inserts)
	}
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()

	if got := Render(nil); got != "The menu is currently empty." {
		t.Fatalf("Render(nil) = %q", got)
	}
}

func TestRenderFormatsLines(t *testing.T) {
	t.Parallel()

	got := Render([]Item{
		{Name: "Margherita Pizza", Description: "Classic tomato sauce, mozzarella, and fresh basil.", Price: 10},
		{Name: "Tiramisu", Description: "Layered espresso-soaked ladyfingers with mascarpone cream and cocoa.", Price: 7},
	})

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "Margherita Pizza: Classic tomato sauce, mozzarella, and fresh basil. - $10" {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if lines[1] != "Tiramisu: Layered espresso-soaked ladyfingers with mascarpone cream and cocoa. - $7" {
		t.Fatalf("unexpected second line: %q", lines[1])
	}
}

func TestDefaultItemsComposition(t *testing.T) {
	t.Parallel()

	if len(DefaultItems) != 14 {
		t.Fatalf("expected 14 seed items, got %d", len(DefaultItems))
	}
	for _, item := range DefaultItems {
		if item.Name == "" || item.Description == "" {
			t.Fatalf("incomplete seed item: %+v", item)
		}
		if item.Price < 0 {
			t.Fatalf("negative price for %s", item.Name)
		}
	}
}
