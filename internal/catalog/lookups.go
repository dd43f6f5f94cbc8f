package catalog

import (
	"github.com/jackmart/promo-planner/pkg/constants"
	"github.com/jackmart/promo-planner/pkg/mathutil"
)

// Defaults returned for categories missing from a lookup table.
const (
	DefaultPrice       = 12000.0
	DefaultMargin      = 0.25
	DefaultElasticity  = 0.8
	DefaultSupportRate = 0.20
)

var prices = map[string]float64{
	"Beras": 18000, "Gula": 13000, "Garam": 2500, "Minyak Goreng": 15000, "Bihun": 7000,
	"Air Mineral": 3000, "Soda": 7000, "Minuman Isotonik": 9000, "Jus Kemasan": 8000,
	"Teh": 8000, "Kopi Bubuk": 22000, "Kopi Kemasan": 12000,
	"Biskuit": 8000, "Keripik": 8000, "Permen": 2500, "Gulali": 1500, "Cokelat": 10000,
	"Kuaci": 4000, "Marshmallow": 5000, "Makaroni": 8000, "Roti": 5000, "Sereal": 25000,
	"Sirup": 15000, "Pasta": 12000, "Saos": 10000, "Kecap": 8000, "Penyedap Rasa": 6000,
	"Kaldu Jamur": 8000, "Mayones": 15000, "Selai": 18000, "Kacang": 10000,
	"Sarden Kaleng": 12000, "Kornet": 15000, "Buah Kering": 20000, "Mie Instan": 3000,
	"Susu Bubuk": 25000, "Susu Kemasan": 6000, "Yogurt": 8000, "Keju": 20000,
	"Mentega": 15000, "Krim": 15000, "Ice Cream": 15000,
	"Nugget": 35000, "Kentang Goreng": 25000,
	"Daging Segar": 35000, "Seafood Segar": 45000, "Sayur-Sayuran": 8000,
	"Buah-Buahan": 12000, "Telur": 25000,
}

var margins = map[string]float64{
	"Beras": 0.08, "Gula": 0.10, "Garam": 0.12, "Minyak Goreng": 0.15,
	"Air Mineral": 0.18, "Mie Instan": 0.20,
	"Soda": 0.22, "Minuman Isotonik": 0.25, "Jus Kemasan": 0.24,
	"Teh": 0.20, "Kopi Kemasan": 0.28, "Kopi Bubuk": 0.30,
	"Sirup": 0.32, "Pasta": 0.28, "Saos": 0.30, "Kecap": 0.25,
	"Mayones": 0.35, "Selai": 0.38, "Sarden Kaleng": 0.22,
	"Kornet": 0.25, "Penyedap Rasa": 0.35, "Kaldu Jamur": 0.32,
	"Biskuit": 0.35, "Keripik": 0.40, "Permen": 0.45, "Cokelat": 0.38,
	"Sereal": 0.32, "Gulali": 0.50, "Kuaci": 0.42, "Marshmallow": 0.40,
	"Makaroni": 0.30, "Roti": 0.30, "Kacang": 0.38,
	"Susu Bubuk": 0.28, "Susu Kemasan": 0.20, "Keju": 0.30,
	"Yogurt": 0.25, "Ice Cream": 0.35, "Mentega": 0.28, "Krim": 0.30,
	"Nugget": 0.28, "Kentang Goreng": 0.25,
	"Daging Segar": 0.25, "Seafood Segar": 0.30,
	"Sayur-Sayuran": 0.35, "Buah-Buahan": 0.32,
	"Telur": 0.18,
	"Buah Kering": 0.42, "Bihun": 0.25,
}

var elasticities = map[string]float64{
	"Beras": 0.3, "Gula": 0.35, "Garam": 0.25, "Minyak Goreng": 0.4,
	"Mie Instan": 0.6, "Bihun": 0.5,
	"Air Mineral": 0.7, "Soda": 0.9, "Teh": 0.6, "Kopi Kemasan": 0.8,
	"Jus Kemasan": 1.0, "Minuman Isotonik": 1.1, "Kopi Bubuk": 0.8,
	"Biskuit": 1.2, "Keripik": 1.3, "Permen": 1.4, "Cokelat": 1.1,
	"Sereal": 0.9, "Gulali": 1.3, "Kuaci": 1.2, "Marshmallow": 1.1,
	"Makaroni": 1.0, "Roti": 0.8, "Kacang": 1.0,
	"Nugget": 0.8, "Ice Cream": 1.2, "Kentang Goreng": 0.9,
	"Susu Bubuk": 0.7, "Keju": 0.8, "Yogurt": 0.6, "Susu Kemasan": 0.5,
	"Mentega": 0.6, "Krim": 0.7,
	"Seafood Segar": 0.9, "Daging Segar": 0.7, "Sayur-Sayuran": 1.0,
	"Buah-Buahan": 0.9, "Telur": 0.4,
	"Sirup": 0.8, "Mayones": 0.6, "Saos": 0.7, "Kecap": 0.5,
	"Penyedap Rasa": 0.4, "Kaldu Jamur": 0.6, "Selai": 0.8,
	"Sarden Kaleng": 0.6, "Kornet": 0.7, "Buah Kering": 1.0,
}

// AveragePrice returns the average unit price for a category.
func AveragePrice(category string) float64 {
	if p, ok := prices[category]; ok {
		return p
	}
	return DefaultPrice
}

// Margin returns the margin fraction for a category.
func Margin(category string) float64 {
	if m, ok := margins[category]; ok {
		return m
	}
	return DefaultMargin
}

// Elasticity returns the brand-adjusted demand elasticity for a category.
// More brands mean more switching within the category, so the base value is
// stepped up by brand count and capped at an absolute bound.
func Elasticity(category string, brands int) float64 {
	base, ok := elasticities[category]
	if !ok {
		base = DefaultElasticity
	}
	multiplier := 1.0
	switch {
	case brands > 20:
		multiplier = 1.15
	case brands > 15:
		multiplier = 1.10
	case brands > 10:
		multiplier = 1.05
	}
	return mathutil.Min(base*multiplier, constants.ElasticityCap)
}

// Trade support tiers by supplier behavior. Suppliers in every tier pay a
// larger share once the discount reaches 25%.
var highSupport = set("Sereal", "Biskuit", "Cokelat", "Susu Bubuk",
	"Kopi Bubuk", "Minuman Isotonik", "Soda", "Ice Cream")

var mediumSupport = set("Sirup", "Jus Kemasan", "Keripik", "Pasta",
	"Mayones", "Saos", "Selai", "Buah Kering", "Permen")

var lowSupport = set("Nugget", "Seafood Segar", "Daging Segar", "Keju",
	"Beras", "Gula", "Minyak Goreng", "Air Mineral")

// TradeSupportRate returns the share of the discount a supplier funds for a
// category at the given discount depth.
func TradeSupportRate(category string, discount float64) float64 {
	deep := discount >= 0.25
	switch {
	case highSupport[category]:
		if deep {
			return 0.35
		}
		return 0.30
	case mediumSupport[category]:
		if deep {
			return 0.25
		}
		return 0.20
	case lowSupport[category]:
		if deep {
			return 0.15
		}
		return 0.10
	default:
		return DefaultSupportRate
	}
}

// alwaysTradeEligible lists categories presumed to have reliable supplier
// co-funding regardless of brand count.
var alwaysTradeEligible = set(
	"Soda", "Minuman Isotonik", "Jus Kemasan", "Keripik", "Biskuit", "Cokelat",
	"Sereal", "Susu Kemasan", "Yogurt", "Kopi Kemasan", "Kopi Bubuk", "Teh",
	"Ice Cream", "Buah Kering", "Selai", "Sirup",
)

// TradeEligible reports whether a category may run supplier-funded promotions.
func TradeEligible(category string, brands int) bool {
	return brands >= 8 || alwaysTradeEligible[category]
}

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}
