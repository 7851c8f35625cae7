package domain

// DemandLevel buckets the inquiry rate of an artwork.
type DemandLevel string

const (
	DemandLow    DemandLevel = "low"
	DemandMedium DemandLevel = "medium"
	DemandHigh   DemandLevel = "high"
)

// PriceCompetitiveness compares the price against its comparable set.
type PriceCompetitiveness string

const (
	PriceBelowMarket PriceCompetitiveness = "below"
	PriceAtMarket    PriceCompetitiveness = "average"
	PriceAboveMarket PriceCompetitiveness = "above"
)

// MarketContext carries the per-artwork market signals attached to a result.
type MarketContext struct {
	TrendScore           float64 // [0, 1]
	Demand               DemandLevel
	PriceCompetitiveness PriceCompetitiveness
	RarityScore          float64 // [0, 1]
}
