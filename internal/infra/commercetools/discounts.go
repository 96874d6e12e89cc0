package commercetools

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"cart-discount-preview/internal/domain/discount"
	"cart-discount-preview/internal/pkg/errs"
)

const (
	opListAutomatic = "list_automatic_discounts"
	opListPriority  = "list_discounts_by_priority"
)

// namedLocales restricts automatic discounts to those with an English name.
var namedLocales = []string{"en", "en-US"}

// ListAutomaticDiscounts returns code-less cart discounts named in a preferred locale.
func (c *Client) ListAutomaticDiscounts(ctx context.Context) ([]discount.Descriptor, error) {
	q := url.Values{}
	q.Set("where", "requiresDiscountCode=false")

	dtos, err := c.listCartDiscounts(ctx, opListAutomatic, q)
	if err != nil {
		return nil, errs.Wrap(err, "list automatic discounts")
	}

	out := make([]discount.Descriptor, 0, len(dtos))
	for _, dto := range dtos {
		d, ok := dto.toDescriptor(namedLocales)
		if !ok {
			c.logger.Debug("skipping discount without preferred-locale name", slog.String("discount_id", dto.ID))
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (c *Client) ListDiscountsByPriority(ctx context.Context) ([]discount.Descriptor, error) {
	q := url.Values{}
	q.Set("sort", "sortOrder desc")

	dtos, err := c.listCartDiscounts(ctx, opListPriority, q)
	if err != nil {
		return nil, errs.Wrap(err, "list discounts by priority")
	}

	out := make([]discount.Descriptor, 0, len(dtos))
	for _, dto := range dtos {
		d, ok := dto.toDescriptor(c.locales)
		if !ok {
			d.Name = "Unnamed Promotion"
		}
		out = append(out, d)
	}
	return out, nil
}

// listCartDiscounts walks every page of the query, c.limit results at a time.
func (c *Client) listCartDiscounts(ctx context.Context, op string, q url.Values) ([]cartDiscountDTO, error) {
	q.Set("limit", strconv.Itoa(c.limit))

	var all []cartDiscountDTO
	for offset := 0; ; {
		q.Set("offset", strconv.Itoa(offset))

		var page pagedQuery[cartDiscountDTO]
		if err := c.get(ctx, op, "/cart-discounts", q, &page); err != nil {
			return nil, errs.Wrapf(err, "page at offset %d", offset)
		}
		all = append(all, page.Results...)
		offset += len(page.Results)

		if len(page.Results) < c.limit || offset >= page.Total {
			return all, nil
		}
	}
}
