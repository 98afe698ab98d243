package node

// BillingCategory is a human billing period bucket.
type BillingCategory string

const (
	BillingMonthly    BillingCategory = "monthly"
	BillingQuarterly  BillingCategory = "quarterly"
	BillingSemiAnnual BillingCategory = "semi_annual"
	BillingAnnual     BillingCategory = "annual"
	BillingBiennial   BillingCategory = "biennial"
	BillingTriennial  BillingCategory = "triennial"
	BillingOnce       BillingCategory = "once"
	BillingCustom     BillingCategory = "custom"
)

// BillingCycleOnce marks a one-time purchase.
const BillingCycleOnce = -1

// billingBands are inclusive day ranges. They are tolerant so that
// months of different lengths land in the same bucket.
var billingBands = []struct {
	min, max int
	category BillingCategory
}{
	{27, 32, BillingMonthly},
	{87, 95, BillingQuarterly},
	{175, 185, BillingSemiAnnual},
	{360, 370, BillingAnnual},
	{720, 750, BillingBiennial},
	{1080, 1150, BillingTriennial},
}

// BillingPeriod is the classification of a billing cycle. Days is only
// meaningful for BillingCustom, where the literal count is displayed.
type BillingPeriod struct {
	Category BillingCategory `json:"category"`
	Days     int             `json:"days"`
}

// ClassifyBillingCycle maps a day count to a billing period. Every input
// maps to exactly one category.
func ClassifyBillingCycle(cycleDays int) BillingPeriod {
	if cycleDays == BillingCycleOnce {
		return BillingPeriod{Category: BillingOnce, Days: cycleDays}
	}
	for _, b := range billingBands {
		if cycleDays >= b.min && cycleDays <= b.max {
			return BillingPeriod{Category: b.category, Days: cycleDays}
		}
	}
	return BillingPeriod{Category: BillingCustom, Days: cycleDays}
}

// Price describes the price badge of a node.
type Price struct {
	// Visible is false for nodes that are not for sale (price 0).
	Visible  bool          `json:"visible"`
	Free     bool          `json:"free"`
	Amount   int           `json:"amount"`
	Currency string        `json:"currency"`
	Period   BillingPeriod `json:"period"`
}

// PriceOf derives the price badge for a node.
func PriceOf(m Metadata) Price {
	if m.Price == PriceNotForSale {
		return Price{}
	}
	return Price{
		Visible:  true,
		Free:     m.Price == PriceFree,
		Amount:   m.Price,
		Currency: m.CurrencySymbol(),
		Period:   ClassifyBillingCycle(m.BillingCycle),
	}
}
