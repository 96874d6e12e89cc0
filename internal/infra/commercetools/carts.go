package commercetools

import (
	"context"
	"net/url"

	"cart-discount-preview/internal/domain/cart"
	"cart-discount-preview/internal/infra"
	"cart-discount-preview/internal/pkg/errs"
)

const opGetCart = "get_cart"

func (c *Client) GetCart(ctx context.Context, cartID string) (cart.Snapshot, error) {
	var dto cartDTO
	if err := c.get(ctx, opGetCart, "/carts/"+url.PathEscape(cartID), nil, &dto); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return cart.Snapshot{}, errs.Mark(errs.Wrapf(err, "cart %s", cartID), errs.ErrCartNotFound)
		}
		return cart.Snapshot{}, errs.Wrapf(err, "get cart %s", cartID)
	}
	return dto.toSnapshot(c.locales), nil
}
