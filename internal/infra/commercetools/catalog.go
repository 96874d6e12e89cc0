package commercetools

import (
	"context"
	"net/url"
	"strconv"

	"cart-discount-preview/internal/infra"
	"cart-discount-preview/internal/pkg/errs"
	"cart-discount-preview/internal/usecase"
)

const (
	opResolveProducts = "resolve_product_categories"
	opGetCategory     = "get_category"
)

// ResolveCategoriesForProducts fetches the projections of productIDs in pages
// of the configured query limit, with categories expanded.
func (c *Client) ResolveCategoriesForProducts(ctx context.Context, productIDs []string) (map[string][]usecase.CategoryRef, error) {
	out := make(map[string][]usecase.CategoryRef, len(productIDs))
	for start := 0; start < len(productIDs); start += c.limit {
		end := min(start+c.limit, len(productIDs))
		batch := productIDs[start:end]

		q := url.Values{}
		q.Set("where", idPredicate(batch))
		q.Set("expand", "categories[*]")
		q.Set("limit", strconv.Itoa(len(batch)))

		var page pagedQuery[productProjectionDTO]
		if err := c.get(ctx, opResolveProducts, "/product-projections", q, &page); err != nil {
			return nil, errs.Wrap(err, "resolve product categories")
		}

		for _, p := range page.Results {
			refs := make([]usecase.CategoryRef, 0, len(p.Categories))
			for _, ref := range p.Categories {
				if ref.ID == "" {
					continue
				}
				if ref.Obj != nil {
					refs = append(refs, ref.Obj.toRef(c.locales))
					continue
				}
				refs = append(refs, usecase.CategoryRef{ID: ref.ID, Name: unknownCategoryName})
			}
			out[p.ID] = refs
		}
	}
	return out, nil
}

func (c *Client) ResolveCategoryByID(ctx context.Context, categoryID string) (*usecase.CategoryRef, error) {
	var dto categoryDTO
	if err := c.get(ctx, opGetCategory, "/categories/"+url.PathEscape(categoryID), nil, &dto); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Wrapf(err, "get category %s", categoryID)
	}
	ref := dto.toRef(c.locales)
	return &ref, nil
}
