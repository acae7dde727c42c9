// models/filters.go
package models

import (
	"strings"

	"github.com/google/uuid"
)

// FilterAll is the sentinel that disables a predicate.
const FilterAll = "all"

// CatalogFilter combines the storefront's text, category and availability
// predicates. Zero-value fields (or the "all" sentinel) match everything.
type CatalogFilter struct {
	Search      string `form:"search"`
	CategoryID  string `form:"category"`
	StockStatus string `form:"stock_status"`
}

// Matches reports whether a product satisfies every active predicate:
// case-insensitive substring on name or description, category id equality,
// and stock status equality.
func (f CatalogFilter) Matches(p Product) bool {
	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		name := strings.ToLower(p.Name)
		desc := ""
		if p.Description != nil {
			desc = strings.ToLower(*p.Description)
		}
		if !strings.Contains(name, term) && !strings.Contains(desc, term) {
			return false
		}
	}

	if f.CategoryID != "" && f.CategoryID != FilterAll {
		if p.CategoryID == nil || p.CategoryID.String() != f.CategoryID {
			return false
		}
	}

	if f.StockStatus != "" && f.StockStatus != FilterAll {
		if p.StockStatus != f.StockStatus {
			return false
		}
	}

	return true
}

// Apply filters a product list, preserving order.
func (f CatalogFilter) Apply(products []Product) []Product {
	matched := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			matched = append(matched, p)
		}
	}
	return matched
}

// ValidCategoryParam reports whether the category query param is usable
// ("all", empty, or a UUID).
func ValidCategoryParam(s string) bool {
	if s == "" || s == FilterAll {
		return true
	}
	_, err := uuid.Parse(s)
	return err == nil
}
