package qualification

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	requiredCategoryFallback = "required category"
	categoriesFallback       = "specified categories"
)

func buildTotalPrice(m []string, in input) Result {
	requiredMajor, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return unknown()
	}
	currency := m[3]
	required := toMinor(requiredMajor)
	current := float64(in.snapshot.TotalPriceMinorUnits)

	detail := &TotalPriceDetail{
		Currency:       currency,
		CurrentAmount:  toMajor(current),
		RequiredAmount: requiredMajor,
	}
	if current >= required {
		return Result{IsApplicable: true, Type: TypeTotalPrice, Status: StatusQualified, TotalPrice: detail}
	}

	detail.RemainingAmount = toMajor(required - current)
	return Result{
		IsApplicable: false,
		Type:         TypeTotalPrice,
		Status:       StatusPending,
		Message:      fmt.Sprintf("Spend %s %.2f more to qualify", currency, detail.RemainingAmount),
		TotalPrice:   detail,
	}
}

// buildCategoryCount serves both the "contains" and single-id "contains any" forms.
func buildCategoryCount(m []string, in input) Result {
	categoryID := m[1]
	requiredCount, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return unknown()
	}

	category, ok := in.categories.Find(categoryID)
	if !ok {
		return Result{
			IsApplicable: false,
			Type:         TypeCategoryCount,
			Status:       StatusNotApplicable,
			Message:      "Category not found in cart",
			CategoryCount: &CategoryCountDetail{
				CategoryID:    categoryID,
				RequiredCount: requiredCount,
			},
		}
	}

	detail := &CategoryCountDetail{
		CategoryID:    categoryID,
		CategoryName:  category.Name,
		CurrentCount:  category.Quantity,
		RequiredCount: requiredCount,
	}
	met := category.Quantity >= requiredCount
	res := Result{IsApplicable: met, Type: TypeCategoryCount, Status: thresholdStatus(met), CategoryCount: detail}
	if !met {
		detail.RemainingCount = requiredCount - category.Quantity
		res.Message = fmt.Sprintf("Add %d more %s from %s to qualify",
			detail.RemainingCount, plural(detail.RemainingCount, "item", "items"), category.Name)
	}
	return res
}

func buildCategoryGrossTotal(m []string, in input) Result {
	categoryIDs := quotedLiterals(m[1])
	requiredMajor, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return unknown()
	}
	currency := m[4]

	matching := in.categories.FindAny(categoryIDs)
	if len(matching) == 0 {
		return Result{
			IsApplicable: false,
			Type:         TypeCategoryGrossTotal,
			Status:       StatusNotApplicable,
			Message:      "None of the specified categories found in cart",
			CategoryGrossTotal: &CategoryGrossTotalDetail{
				CategoryIDs:    categoryIDs,
				Currency:       currency,
				RequiredAmount: requiredMajor,
			},
		}
	}

	var currentMinor int64
	names := make([]string, 0, len(matching))
	for _, c := range matching {
		currentMinor += c.TotalPriceMinorUnits
		if c.Name != "" {
			names = append(names, c.Name)
		}
	}
	displayNames := categoriesFallback
	if len(names) > 0 {
		displayNames = strings.Join(names, " or ")
	}

	required := toMinor(requiredMajor)
	current := float64(currentMinor)
	detail := &CategoryGrossTotalDetail{
		CategoryIDs:    categoryIDs,
		CategoryNames:  displayNames,
		Currency:       currency,
		CurrentAmount:  toMajor(current),
		RequiredAmount: requiredMajor,
	}
	if current >= required {
		return Result{IsApplicable: true, Type: TypeCategoryGrossTotal, Status: StatusQualified, CategoryGrossTotal: detail}
	}

	detail.RemainingAmount = toMajor(required - current)
	return Result{
		IsApplicable:       false,
		Type:               TypeCategoryGrossTotal,
		Status:             StatusPending,
		Message:            fmt.Sprintf("Spend %s %.2f more on %s products to qualify", currency, detail.RemainingAmount, displayNames),
		CategoryGrossTotal: detail,
	}
}

func buildCategoryExists(m []string, in input) Result {
	categoryID := m[1]
	category, ok := in.categories.Find(categoryID)
	if ok && category.Quantity > 0 {
		return Result{
			IsApplicable:   true,
			Type:           TypeCategoryExists,
			Status:         StatusQualified,
			CategoryExists: &CategoryExistsDetail{CategoryID: categoryID, CategoryName: category.Name},
		}
	}

	// The category may be known with nothing from it in the cart.
	name := requiredCategoryFallback
	if ok && category.Name != "" {
		name = category.Name
	}
	return Result{
		IsApplicable:   false,
		Type:           TypeCategoryExists,
		Status:         StatusPending,
		Message:        fmt.Sprintf("Add any item from %s category to qualify", name),
		CategoryExists: &CategoryExistsDetail{CategoryID: categoryID, CategoryName: category.Name},
	}
}

func buildSKUCount(m []string, in input) Result {
	sku := m[1]
	requiredCount, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return unknown()
	}

	items := in.snapshot.LineItemsWithSKU(sku)
	var currentCount int64
	for _, li := range items {
		currentCount += li.Quantity
	}
	productName := "product with SKU: " + sku
	if len(items) > 0 && items[0].DisplayName != "" {
		productName = items[0].DisplayName
	}

	detail := &SKUCountDetail{
		SKU:           sku,
		ProductName:   productName,
		CurrentCount:  currentCount,
		RequiredCount: requiredCount,
	}
	met := currentCount >= requiredCount
	res := Result{IsApplicable: met, Type: TypeSKUCount, Status: thresholdStatus(met), SKUCount: detail}
	if !met {
		detail.RemainingCount = requiredCount - currentCount
		res.Message = fmt.Sprintf("Add %d more %s of %s to qualify",
			detail.RemainingCount, plural(detail.RemainingCount, "unit", "units"), productName)
	}
	return res
}

func combine(children []Result) Result {
	applicable := true
	notApplicable := false
	qualified := []string{}
	pending := []string{}

	for _, c := range children {
		if c.Status == StatusNotApplicable {
			notApplicable = true
		}
		if c.IsApplicable {
			qualified = append(qualified, qualifiedMessage(c))
			continue
		}
		applicable = false
		if c.Message != "" {
			pending = append(pending, c.Message)
		}
	}

	status := StatusPending
	switch {
	case notApplicable:
		status = StatusNotApplicable
	case applicable:
		status = StatusQualified
	}

	return Result{
		IsApplicable: applicable,
		Type:         TypeCombined,
		Status:       status,
		Message:      strings.Join(pending, " and "),
		Combined: &CombinedDetail{
			QualifiedConditions: qualified,
			PendingConditions:   pending,
			Conditions:          children,
		},
	}
}

// qualifiedMessage describes a satisfied clause in one line.
func qualifiedMessage(r Result) string {
	switch {
	case r.Type == TypeCategoryGrossTotal && r.CategoryGrossTotal != nil:
		d := r.CategoryGrossTotal
		return fmt.Sprintf("Spent %.2f on %s products (required: %.2f)", d.CurrentAmount, d.CategoryNames, d.RequiredAmount)
	case r.Type == TypeCategoryCount && r.CategoryCount != nil:
		d := r.CategoryCount
		return fmt.Sprintf("Added %d items from %s (required: %d)", d.CurrentCount, d.CategoryName, d.RequiredCount)
	case r.Type == TypeSKUCount && r.SKUCount != nil:
		d := r.SKUCount
		return fmt.Sprintf("Added %d units of %s (required: %d)", d.CurrentCount, d.ProductName, d.RequiredCount)
	case r.Type == TypeTotalPrice:
		return "Cart total meets the minimum amount requirement"
	case r.Type == TypeCategoryExists && r.CategoryExists != nil:
		return fmt.Sprintf("Added items from %s category", r.CategoryExists.CategoryName)
	default:
		return "Qualified condition"
	}
}

func toMinor(major float64) float64 { return major * 100 }

func toMajor(minor float64) float64 { return minor / 100 }

func plural(n int64, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
