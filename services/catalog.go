package services

import (
	"encoding/csv"
	"log/slog"
	"math/rand"
	"os"
	"sort"
	"strings"
	"unicode"

	"zulu-bot/models"
)

// Catalog holds the product list and the category index. Built once at
// startup and read-only afterwards.
type Catalog struct {
	products   []models.Product
	index      map[string][]models.Product
	categories []string
}

// CanonicalKey normalizes a category label into a lookup key: lowercase,
// punctuation replaced with spaces, whitespace collapsed and trimmed.
// The same function is applied when building the index and when looking up
// classifier output, so the two can never drift apart.
func CanonicalKey(s string) string {
	lower := strings.ToLower(s)
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return r
		}
		return ' '
	}, lower)
	return strings.Join(strings.Fields(mapped), " ")
}

// LoadCatalog reads the product CSV. Rows missing a name or category are
// dropped, a missing or unreadable file yields an empty catalog and the bot
// keeps running in conversational-only mode.
func LoadCatalog(path string) *Catalog {
	c := &Catalog{index: make(map[string][]models.Product)}

	f, err := os.Open(path)
	if err != nil {
		slog.Warn("Product catalog not found, running in conversational-only mode",
			"path", path, "error", err)
		return c
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		slog.Error("Failed to read product catalog", "path", path, "error", err)
		return c
	}
	if len(records) == 0 {
		return c
	}

	// Header row maps column names to positions
	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	for _, row := range records[1:] {
		p := models.Product{
			Name:     field(row, "name"),
			Category: field(row, "category"),
			Price:    field(row, "price"),
			ImageURL: field(row, "image_url"),
		}
		if p.Name == "" || p.Category == "" {
			continue
		}
		if p.Price != "" && !strings.HasPrefix(p.Price, "₹") {
			p.Price = "₹" + p.Price
		}
		c.products = append(c.products, p)

		key := CanonicalKey(p.Category)
		c.index[key] = append(c.index[key], p)
	}

	for key := range c.index {
		c.categories = append(c.categories, key)
	}
	sort.Strings(c.categories)

	slog.Info("Product catalog loaded", "products", len(c.products), "categories", len(c.categories))
	return c
}

// Categories returns the canonical category keys in sorted order.
func (c *Catalog) Categories() []string {
	return c.categories
}

// Len returns the number of loaded products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Sample returns up to n products from the category, chosen uniformly at
// random without replacement. An unknown or empty category yields nil.
func (c *Catalog) Sample(key string, n int) []models.Product {
	items := c.index[key]
	if len(items) == 0 || n <= 0 {
		return nil
	}
	if n > len(items) {
		n = len(items)
	}

	picks := make([]models.Product, 0, n)
	for _, i := range rand.Perm(len(items))[:n] {
		picks = append(picks, items[i])
	}
	return picks
}
