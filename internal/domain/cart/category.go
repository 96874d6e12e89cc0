package cart

// CategorySummary aggregates every line item whose product belongs to the category.
type CategorySummary struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Key                  string `json:"key"`
	Quantity             int64  `json:"quantity"`
	TotalPriceMinorUnits int64  `json:"totalPrice"`
}

// Categories is an ordered category list with id lookups.
type Categories []CategorySummary

func (cs Categories) Find(id string) (CategorySummary, bool) {
	for _, c := range cs {
		if c.ID == id {
			return c, true
		}
	}
	return CategorySummary{}, false
}

// FindAny returns the categories matching any of ids, in list order.
func (cs Categories) FindAny(ids []string) Categories {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out Categories
	for _, c := range cs {
		if _, ok := want[c.ID]; ok {
			out = append(out, c)
		}
	}
	return out
}

func (cs Categories) Has(id string) bool {
	_, ok := cs.Find(id)
	return ok
}
