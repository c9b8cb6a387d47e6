// Package catalog holds the in-memory representation of the product and
// bundle catalog. The catalog is loaded once at startup from the durable
// store, falling back to the factory seed data, and is mutated only by
// admin operations.
package catalog

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pizzarten/pizzarten/internal/store"
)

// Kind partitions catalog lookups. The values are the persisted and
// deep-link vocabulary inherited from the original data format.
type Kind string

const (
	KindProduct Kind = "menu"
	KindBundle  Kind = "combo"
)

// ParseKind maps a deep-link "type" parameter to a Kind.
// Unknown values report ok=false.
func ParseKind(s string) (Kind, bool) {
	switch Kind(strings.ToLower(s)) {
	case KindProduct:
		return KindProduct, true
	case KindBundle:
		return KindBundle, true
	default:
		return "", false
	}
}

// Product is a single menu item. Products are created by the admin add
// operation (id = creation-time milliseconds) or seeded, and deleted by
// the admin; they are never mutated otherwise.
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Desc  string  `json:"desc"`
	Price float64 `json:"price"`
	Img   string  `json:"img"`
}

// Bundle is a fixed-price combo. Bundles are read-only: there is no
// admin mutation for them.
type Bundle struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Desc  string  `json:"desc"`
	Price float64 `json:"price"`
	Badge string  `json:"badge"`
	Img   string  `json:"img"`
}

// Company is the storefront identity block.
type Company struct {
	Name       string `json:"name"`
	Slogan     string `json:"slogan"`
	FooterText string `json:"footerText"`
}

// Hero is the home page banner content.
type Hero struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	CTAButton string `json:"ctaButton"`
}

// Catalog is the full persisted catalog shape. The JSON field names
// ("menu", "combos") are part of the storage contract.
type Catalog struct {
	Company  Company   `json:"company"`
	Hero     Hero      `json:"hero"`
	Products []Product `json:"menu"`
	Bundles  []Bundle  `json:"combos"`
}

// Placeholder content for admin-created products.
const (
	newProductDesc = "Nueva especialidad creada por el Admin."
	newProductImg  = "https://images.unsplash.com/photo-1513104890138-7c749659a591?auto=format&fit=crop&w=500&q=80"
)

// Load reads the catalog from the durable store. A missing key falls back
// to a deep copy of the seed data; malformed data falls back to empty
// collections. Load never fails: it always yields a usable catalog.
func Load(s store.Store) *Catalog {
	data, err := s.Get(store.CatalogKey)
	if err != nil {
		return Seed()
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return &Catalog{Products: []Product{}, Bundles: []Bundle{}}
	}
	if c.Products == nil {
		c.Products = []Product{}
	}
	if c.Bundles == nil {
		c.Bundles = []Bundle{}
	}
	return &c
}

// Encode serializes the catalog for persistence.
func (c *Catalog) Encode() ([]byte, error) {
	return json.Marshal(c)
}

// AddProduct appends a new admin-created product and returns it.
// The id is derived from the current time in milliseconds, the description
// and image are fixed placeholders, and the price is rounded to two
// decimal places. Empty names or non-positive prices are rejected with a
// nil return and no mutation.
func (c *Catalog) AddProduct(name, price string) *Product {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	parsed, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil || parsed <= 0 {
		return nil
	}

	p := Product{
		ID:    time.Now().UnixMilli(),
		Name:  name,
		Desc:  newProductDesc,
		Price: RoundPrice(parsed),
		Img:   newProductImg,
	}
	c.Products = append(c.Products, p)
	return &p
}

// DeleteProduct removes the product with the given id. Removing an absent
// id is a no-op; the return reports whether anything was removed.
func (c *Catalog) DeleteProduct(id int64) bool {
	for i, p := range c.Products {
		if p.ID == id {
			c.Products = append(c.Products[:i], c.Products[i+1:]...)
			return true
		}
	}
	return false
}

// FindProduct returns the product with the given id, or nil.
func (c *Catalog) FindProduct(id int64) *Product {
	for i := range c.Products {
		if c.Products[i].ID == id {
			return &c.Products[i]
		}
	}
	return nil
}

// FindBundle returns the bundle with the given id, or nil.
func (c *Catalog) FindBundle(id int64) *Bundle {
	for i := range c.Bundles {
		if c.Bundles[i].ID == id {
			return &c.Bundles[i]
		}
	}
	return nil
}

// Item is the kind-independent projection of a catalog entry, used by
// cart snapshots and the detail view.
type Item struct {
	ID    int64
	Kind  Kind
	Name  string
	Desc  string
	Price float64
	Img   string
	Badge string
}

// Find looks up an item by id within the given kind partition.
// Ids are only unique within their own collection, never across both.
func (c *Catalog) Find(kind Kind, id int64) *Item {
	switch kind {
	case KindProduct:
		if p := c.FindProduct(id); p != nil {
			return &Item{ID: p.ID, Kind: KindProduct, Name: p.Name, Desc: p.Desc, Price: p.Price, Img: p.Img}
		}
	case KindBundle:
		if b := c.FindBundle(id); b != nil {
			return &Item{ID: b.ID, Kind: KindBundle, Name: b.Title, Desc: b.Desc, Price: b.Price, Img: b.Img, Badge: b.Badge}
		}
	}
	return nil
}

// RoundPrice rounds a price to two decimal places.
func RoundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}
