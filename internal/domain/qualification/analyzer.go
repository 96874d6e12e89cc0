package qualification

import (
	"regexp"
	"strings"

	"cart-discount-preview/internal/domain/cart"
)

const customerGroupMarker = "customer.customerGroup.key"

var andSeparator = regexp.MustCompile(`\s+and\s+`)

// Predicate shapes emitted by the platform. Amounts are quoted "<major> <CUR>".
var (
	totalPricePattern = regexp.MustCompile(
		`totalPrice\s*(>=|>)\s*"\s*(\d+(?:\.\d+)?)\s+([A-Za-z]+)\s*"`)
	categoryCountPattern = regexp.MustCompile(
		`lineItemCount\s*\(\s*categories\.id\s+contains\s+"([^"]+)"\s*\)\s*>=\s*(\d+)`)
	categoryGrossTotalPattern = regexp.MustCompile(
		`lineItemGrossTotal\s*\(\s*categories\.id\s+contains\s+any\s*\(([^)]*)\)\s*\)\s*(>=|>)\s*"\s*(\d+(?:\.\d+)?)\s+([A-Za-z]+)\s*"`)
	categoryCountAnyPattern = regexp.MustCompile(
		`lineItemCount\s*\(\s*categories\.id\s+contains\s+any\s*\(\s*"([^"]+)"\s*\)\s*\)\s*>=\s*(\d+)`)
	categoryExistsPattern = regexp.MustCompile(
		`lineItemExists\s*\(\s*categories\.id\s+contains\s+"([^"]+)"\s*\)\s*=\s*true`)
	skuCountPattern = regexp.MustCompile(
		`lineItemCount\s*\(\s*sku\s*=\s*"([^"]+)"\s*\)\s*>=\s*(\d+)`)

	quotedLiteral = regexp.MustCompile(`"([^"]+)"`)
	// containsAnyList captures the id list of every "categories.id contains any (...)".
	containsAnyList = regexp.MustCompile(`categories\.id\s+contains\s+any\s*\(([^)]*)\)`)
)

type input struct {
	categories cart.Categories
	snapshot   cart.Snapshot
}

type rule struct {
	pattern *regexp.Regexp
	build   func(m []string, in input) Result
}

// Analyzer recognizes a fixed, ordered set of predicate shapes. The first
// matching rule wins; anything else is UNKNOWN.
type Analyzer struct {
	rules []rule
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		rules: []rule{
			{pattern: totalPricePattern, build: buildTotalPrice},
			{pattern: categoryCountPattern, build: buildCategoryCount},
			{pattern: categoryGrossTotalPattern, build: buildCategoryGrossTotal},
			{pattern: categoryCountAnyPattern, build: buildCategoryCount},
			{pattern: categoryExistsPattern, build: buildCategoryExists},
			{pattern: skuCountPattern, build: buildSKUCount},
		},
	}
}

// Analyze never fails: unrecognized input degrades to an UNKNOWN result.
func (a *Analyzer) Analyze(predicate string, categories []cart.CategorySummary, snapshot cart.Snapshot) Result {
	return a.analyze(predicate, input{categories: categories, snapshot: snapshot})
}

func (a *Analyzer) analyze(predicate string, in input) Result {
	predicate = strings.TrimSpace(predicate)

	if strings.Contains(predicate, customerGroupMarker) {
		return customerGroup()
	}

	if clauses := andSeparator.Split(predicate, -1); len(clauses) > 1 {
		children := make([]Result, 0, len(clauses))
		for _, clause := range clauses {
			children = append(children, a.analyze(clause, in))
		}
		return combine(children)
	}

	for _, r := range a.rules {
		if m := r.pattern.FindStringSubmatch(predicate); m != nil {
			return r.build(m, in)
		}
	}
	return unknown()
}

// ReferencedCategoryIDs lists, in first-seen order, every category id named in
// a "categories.id contains any (...)" clause of predicate.
func ReferencedCategoryIDs(predicate string) []string {
	var ids []string
	seen := make(map[string]struct{})
	for _, list := range containsAnyList.FindAllStringSubmatch(predicate, -1) {
		for _, id := range quotedLiterals(list[1]) {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

func quotedLiterals(s string) []string {
	var out []string
	for _, m := range quotedLiteral.FindAllStringSubmatch(s, -1) {
		out = append(out, m[1])
	}
	return out
}
