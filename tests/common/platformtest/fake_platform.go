//go:build unit || e2e

package platformtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
)

const (
	ClientID     = "test-client"
	ClientSecret = "test-secret"
	ProjectKey   = "test-project"
	accessToken  = "fake-platform-token"
)

var quotedID = regexp.MustCompile(`"([^"]+)"`)

type Category struct {
	ID   string
	Key  string
	Name string
}

type LineItem struct {
	ProductID  string
	SKU        string
	Name       string
	Quantity   int64
	CentAmount int64
}

type Cart struct {
	ID        string
	Currency  string
	LineItems []LineItem
}

type Discount struct {
	ID                   string
	Name                 string
	Locale               string
	Predicate            string
	IsActive             bool
	SortOrder            string
	RequiresDiscountCode bool
}

// FakePlatform is an in-memory stand-in for the commercetools HTTP API.
type FakePlatform struct {
	Server *httptest.Server

	mu         sync.Mutex
	carts      map[string]Cart
	products   map[string][]string
	categories map[string]Category
	discounts  []Discount
	hits       map[string]int
	failing    bool
}

func NewFakePlatform(t *testing.T) *FakePlatform {
	t.Helper()
	p := &FakePlatform{}
	p.Reset()

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", p.token)
	prefix := "/" + ProjectKey
	mux.HandleFunc(prefix+"/carts/", p.authorized(p.cart))
	mux.HandleFunc(prefix+"/product-projections", p.authorized(p.productProjections))
	mux.HandleFunc(prefix+"/categories/", p.authorized(p.category))
	mux.HandleFunc(prefix+"/cart-discounts", p.authorized(p.cartDiscounts))

	p.Server = httptest.NewServer(mux)
	t.Cleanup(p.Server.Close)
	return p
}

func (p *FakePlatform) URL() string {
	return p.Server.URL
}

// Reset drops every fixture and request counter.
func (p *FakePlatform) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.carts = map[string]Cart{}
	p.products = map[string][]string{}
	p.categories = map[string]Category{}
	p.discounts = nil
	p.hits = map[string]int{}
	p.failing = false
}

func (p *FakePlatform) AddCategory(c Category) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.categories[c.ID] = c
}

func (p *FakePlatform) AddProduct(productID string, categoryIDs ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.products[productID] = categoryIDs
}

func (p *FakePlatform) AddCart(c Cart) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.carts[c.ID] = c
}

func (p *FakePlatform) AddDiscount(d Discount) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if d.Locale == "" {
		d.Locale = "en"
	}
	p.discounts = append(p.discounts, d)
}

// SetFailing makes every API route answer 503.
func (p *FakePlatform) SetFailing(failing bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failing = failing
}

// Hits reports how many authorized requests reached the route.
func (p *FakePlatform) Hits(route string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hits[route]
}

func (p *FakePlatform) token(w http.ResponseWriter, r *http.Request) {
	user, pass, ok := r.BasicAuth()
	if !ok || user != ClientID || pass != ClientSecret {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": accessToken,
		"token_type":   "Bearer",
		"expires_in":   172800,
	})
}

func (p *FakePlatform) authorized(route func(w http.ResponseWriter, r *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+accessToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		name := strings.TrimPrefix(r.URL.Path, "/"+ProjectKey)
		if i := strings.IndexByte(name[1:], '/'); i >= 0 {
			name = name[:i+1]
		}

		p.mu.Lock()
		p.hits[name]++
		failing := p.failing
		p.mu.Unlock()

		if failing {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"message": "unavailable"})
			return
		}
		route(w, r)
	}
}

func (p *FakePlatform) cart(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/"+ProjectKey+"/carts/")

	p.mu.Lock()
	c, ok := p.carts[id]
	p.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "cart not found"})
		return
	}

	var total int64
	items := make([]map[string]any, 0, len(c.LineItems))
	for _, li := range c.LineItems {
		total += li.CentAmount
		items = append(items, map[string]any{
			"productId":  li.ProductID,
			"name":       map[string]string{"en": li.Name},
			"variant":    map[string]string{"sku": li.SKU},
			"quantity":   li.Quantity,
			"totalPrice": money(li.CentAmount, c.Currency),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":         c.ID,
		"totalPrice": money(total, c.Currency),
		"lineItems":  items,
	})
}

func (p *FakePlatform) productProjections(w http.ResponseWriter, r *http.Request) {
	var ids []string
	for _, m := range quotedID.FindAllStringSubmatch(r.URL.Query().Get("where"), -1) {
		ids = append(ids, m[1])
	}

	p.mu.Lock()
	results := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		categoryIDs, ok := p.products[id]
		if !ok {
			continue
		}
		refs := make([]map[string]any, 0, len(categoryIDs))
		for _, cid := range categoryIDs {
			ref := map[string]any{"typeId": "category", "id": cid}
			if c, ok := p.categories[cid]; ok {
				ref["obj"] = categoryJSON(c)
			}
			refs = append(refs, ref)
		}
		results = append(results, map[string]any{"id": id, "categories": refs})
	}
	p.mu.Unlock()

	writeJSON(w, http.StatusOK, paged(results))
}

func (p *FakePlatform) category(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/"+ProjectKey+"/categories/")

	p.mu.Lock()
	c, ok := p.categories[id]
	p.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "category not found"})
		return
	}
	writeJSON(w, http.StatusOK, categoryJSON(c))
}

func (p *FakePlatform) cartDiscounts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	p.mu.Lock()
	ds := make([]Discount, 0, len(p.discounts))
	for _, d := range p.discounts {
		if q.Get("where") == "requiresDiscountCode=false" && d.RequiresDiscountCode {
			continue
		}
		ds = append(ds, d)
	}
	p.mu.Unlock()

	if q.Get("sort") == "sortOrder desc" {
		sort.SliceStable(ds, func(i, j int) bool {
			a, _ := strconv.ParseFloat(ds[i].SortOrder, 64)
			b, _ := strconv.ParseFloat(ds[j].SortOrder, 64)
			return a > b
		})
	}

	results := make([]map[string]any, 0, len(ds))
	for _, d := range ds {
		results = append(results, map[string]any{
			"id":                   d.ID,
			"version":              1,
			"name":                 map[string]string{d.Locale: d.Name},
			"cartPredicate":        d.Predicate,
			"isActive":             d.IsActive,
			"stackingMode":         "Stacking",
			"sortOrder":            d.SortOrder,
			"requiresDiscountCode": d.RequiresDiscountCode,
		})
	}
	writeJSON(w, http.StatusOK, paged(results))
}

func categoryJSON(c Category) map[string]any {
	return map[string]any{
		"id":   c.ID,
		"key":  c.Key,
		"name": map[string]string{"en": c.Name},
	}
}

func money(cents int64, currency string) map[string]any {
	return map[string]any{"type": "centPrecision", "centAmount": cents, "currencyCode": currency, "fractionDigits": 2}
}

func paged(results []map[string]any) map[string]any {
	return map[string]any{
		"limit":   len(results),
		"offset":  0,
		"count":   len(results),
		"total":   len(results),
		"results": results,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
