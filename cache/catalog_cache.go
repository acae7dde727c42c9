package catalog_cache

import (
	"sync"
	"time"

	"github.com/wilsonAa123/seriprint-pro/models"
)

const TTL = 5 * time.Minute

// ── Published catalog cache ──────────────────────────────────────────────────
// Stores the published products with images preloaded. The storefront filter
// runs over this in-memory set on every request; admin mutations invalidate it.

type catalogEntry struct {
	products  []models.Product
	fetchedAt time.Time
}

var (
	mu    sync.RWMutex
	entry *catalogEntry
)

func Get() (products []models.Product, ok bool) {
	mu.RLock()
	defer mu.RUnlock()
	if entry == nil || time.Since(entry.fetchedAt) > TTL {
		return nil, false
	}
	return entry.products, true
}

func Set(products []models.Product) {
	mu.Lock()
	defer mu.Unlock()
	entry = &catalogEntry{
		products:  products,
		fetchedAt: time.Now(),
	}
}

func Invalidate() {
	mu.Lock()
	defer mu.Unlock()
	entry = nil
}
