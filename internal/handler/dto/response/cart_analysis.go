package response

import (
	"cart-discount-preview/internal/domain/qualification"
	"cart-discount-preview/internal/pkg/errs"
	"cart-discount-preview/internal/usecase"

	"github.com/jinzhu/copier"
)

type CategoryResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Key        string `json:"key"`
	Quantity   int64  `json:"quantity"`
	TotalPrice int64  `json:"totalPrice"`
}

type DiscountAnalysisResponse struct {
	Discount DiscountResponse `json:"discount"`
	Reason   string           `json:"reason,omitempty"`
	qualification.Result
}

type CartAnalysisResponse struct {
	Categories       []CategoryResponse         `json:"categories"`
	TotalProducts    int64                      `json:"totalProducts"`
	DiscountAnalysis []DiscountAnalysisResponse `json:"discountAnalysis"`
}

func FromCartAnalysis(a *usecase.CartAnalysis) (*CartAnalysisResponse, error) {
	categories := make([]CategoryResponse, 0, len(a.Categories))
	for _, c := range a.Categories {
		var cr CategoryResponse
		if err := copier.Copy(&cr, &c); err != nil {
			return nil, errs.Wrap(err, "copy category")
		}
		// exposed as totalPrice in minor units
		cr.TotalPrice = c.TotalPriceMinorUnits
		categories = append(categories, cr)
	}

	analyses := make([]DiscountAnalysisResponse, 0, len(a.DiscountAnalysis))
	for _, da := range a.DiscountAnalysis {
		d, err := FromDiscount(da.Discount)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, DiscountAnalysisResponse{
			Discount: d,
			Reason:   da.Reason,
			Result:   da.Result,
		})
	}

	return &CartAnalysisResponse{
		Categories:       categories,
		TotalProducts:    a.TotalProducts,
		DiscountAnalysis: analyses,
	}, nil
}
