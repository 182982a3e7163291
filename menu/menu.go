// Package menu holds the static restaurant catalog. The catalog is seeded
// once at process start if empty and read-only afterwards.
package menu

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Item is a catalog entry.
type Item struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Catalog is the read-mostly store contract. Insert exists for seeding only.
type Catalog interface {
	List(ctx context.Context) ([]Item, error)
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, item Item) error
}

// Seed populates an empty catalog with the built-in items. A non-empty
// catalog is left untouched.
func Seed(ctx context.Context, catalog Catalog) error {
	n, err := catalog.Count(ctx)
	if err != nil {
		return fmt.Errorf("count menu items: %w", err)
	}
	if n > 0 {
		return nil
	}

	for _, item := range DefaultItems {
		if err := catalog.Insert(ctx, item); err != nil {
			return fmt.Errorf("seed menu item %q: %w", item.Name, err)
		}
	}
	return nil
}

// Render formats the catalog for the customer, one item per line.
func Render(items []Item) string {
	if len(items) == 0 {
		return "The menu is currently empty."
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		price := strconv.FormatFloat(item.Price, 'f', -1, 64)
		lines = append(lines, fmt.Sprintf("%s: %s - $%s", item.Name, item.Description, price))
	}
	return strings.Join(lines, "\n")
}

// DefaultItems is the built-in seed catalog.
var DefaultItems = []Item{
	// Pizzas
	{Name: "Margherita Pizza", Description: "Classic tomato sauce, mozzarella, and fresh basil.", Price: 10},
	{Name: "Pepperoni Pizza", Description: "Tomato sauce, mozzarella, and sliced pepperoni.", Price: 12},
	{Name: "Quattro Formaggi Pizza", Description: "Tomato sauce with mozzarella, gorgonzola, parmesan, and fontina.", Price: 14},
	{Name: "Hawaiian Pizza", Description: "Tomato sauce, mozzarella, ham, and pineapple.", Price: 13},

	// Pastas
	{Name: "Spaghetti Carbonara", Description: "Spaghetti with eggs, pecorino cheese, pancetta, and black pepper.", Price: 12},
	{Name: "Penne Arrabbiata", Description: "Penne pasta in a spicy tomato and garlic sauce.", Price: 11},
	{Name: "Fettuccine Alfredo", Description: "Fettuccine pasta tossed in a butter, cream, and parmesan sauce.", Price: 13},
	{Name: "Spinach & Ricotta Ravioli", Description: "Homemade ravioli filled with spinach and ricotta cheese, served in a light butter sauce.", Price: 15},

	// Salads
	{Name: "Caesar Salad", Description: "Romaine lettuce, croutons, and parmesan with Caesar dressing.", Price: 8},
	{Name: "Greek Salad", Description: "Tomatoes, cucumbers, onions, olives, and feta cheese with olive oil dressing.", Price: 9},
	{Name: "Caprese Salad", Description: "Fresh mozzarella, tomatoes, basil, and balsamic glaze.", Price: 10},

	// Desserts
	{Name: "Tiramisu", Description: "Layered espresso-soaked ladyfingers with mascarpone cream and cocoa.", Price: 7},
	{Name: "Panna Cotta", Description: "Silky cream dessert topped with a berry coulis.", Price: 7},
	{Name: "Gelato", Description: "Homemade Italian ice cream, assorted flavors.", Price: 6},
}
