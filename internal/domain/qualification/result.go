package qualification

// Type identifies which predicate shape produced a Result.
type Type string

const (
	TypeTotalPrice         Type = "TOTAL_PRICE"
	TypeCategoryCount      Type = "CATEGORY_COUNT"
	TypeCategoryGrossTotal Type = "CATEGORY_GROSS_TOTAL"
	TypeCategoryExists     Type = "CATEGORY_EXISTS"
	TypeSKUCount           Type = "SKU_COUNT"
	TypeCustomerGroup      Type = "CUSTOMER_GROUP"
	TypeCombined           Type = "COMBINED"
	TypeUnknown            Type = "UNKNOWN"
)

// Status is the qualification state reported to the caller.
type Status string

const (
	StatusQualified     Status = "QUALIFIED"
	StatusPending       Status = "PENDING"
	StatusNotApplicable Status = "NOT_APPLICABLE"
	StatusUnknown       Status = "UNKNOWN"
)

// Result is the verdict for one predicate. Exactly one detail arm matching
// Type is set; CUSTOMER_GROUP and UNKNOWN carry none.
type Result struct {
	IsApplicable bool   `json:"isApplicable"`
	Type         Type   `json:"type,omitempty"`
	Status       Status `json:"qualificationStatus,omitempty"`
	Message      string `json:"qualificationMessage,omitempty"`

	TotalPrice         *TotalPriceDetail         `json:"totalPrice,omitempty"`
	CategoryCount      *CategoryCountDetail      `json:"categoryCount,omitempty"`
	CategoryGrossTotal *CategoryGrossTotalDetail `json:"categoryGrossTotal,omitempty"`
	CategoryExists     *CategoryExistsDetail     `json:"categoryExists,omitempty"`
	SKUCount           *SKUCountDetail           `json:"skuCount,omitempty"`
	Combined           *CombinedDetail           `json:"combined,omitempty"`
}

// Amounts are in major currency units.
type TotalPriceDetail struct {
	Currency        string  `json:"currency"`
	CurrentAmount   float64 `json:"currentAmount"`
	RequiredAmount  float64 `json:"requiredAmount"`
	RemainingAmount float64 `json:"remainingAmount"`
}

type CategoryCountDetail struct {
	CategoryID     string `json:"categoryId"`
	CategoryName   string `json:"categoryName,omitempty"`
	CurrentCount   int64  `json:"currentCount"`
	RequiredCount  int64  `json:"requiredCount"`
	RemainingCount int64  `json:"remainingCount"`
}

type CategoryGrossTotalDetail struct {
	CategoryIDs     []string `json:"categoryIds"`
	CategoryNames   string   `json:"categoryNames,omitempty"`
	Currency        string   `json:"currency"`
	CurrentAmount   float64  `json:"currentAmount"`
	RequiredAmount  float64  `json:"requiredAmount"`
	RemainingAmount float64  `json:"remainingAmount"`
}

type CategoryExistsDetail struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName,omitempty"`
}

type SKUCountDetail struct {
	SKU            string `json:"sku"`
	ProductName    string `json:"productName"`
	CurrentCount   int64  `json:"currentCount"`
	RequiredCount  int64  `json:"requiredCount"`
	RemainingCount int64  `json:"remainingCount"`
}

type CombinedDetail struct {
	QualifiedConditions []string `json:"qualifiedConditions"`
	PendingConditions   []string `json:"pendingConditions"`
	Conditions          []Result `json:"conditions"`
}

// thresholdStatus is the status of an evaluable threshold clause.
func thresholdStatus(met bool) Status {
	if met {
		return StatusQualified
	}
	return StatusPending
}

func customerGroup() Result {
	return Result{
		IsApplicable: false,
		Type:         TypeCustomerGroup,
		Status:       StatusNotApplicable,
		Message:      "Customer group specific discount",
	}
}

func unknown() Result {
	return Result{
		IsApplicable: false,
		Type:         TypeUnknown,
		Status:       StatusUnknown,
		Message:      "Unable to determine qualification requirements",
	}
}
