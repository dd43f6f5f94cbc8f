// Package planner contains the promotion decision logic: scoring discount
// candidates per (store, category, day) and assembling per-store daily plans.
package planner

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/jackmart/promo-planner/internal/calendar"
	"github.com/jackmart/promo-planner/internal/catalog"
	"github.com/jackmart/promo-planner/pkg/constants"
	"github.com/jackmart/promo-planner/pkg/mathutil"
)

// Promotion mechanisms.
const (
	TypeTrade   = "Trade"
	TypeInStore = "In-Store"
)

// Candidate discount depths per mechanism.
var (
	inStoreDiscounts = []float64{0.10, 0.15, 0.20}
	tradeDiscounts   = []float64{0.15, 0.20, 0.25}
)

// Option is one evaluated discount candidate. All fields are derived at
// evaluation time; an Option is immutable once computed.
type Option struct {
	Category          string
	PromoType         string
	Discount          float64 // 0.1 = 10%
	TradeSupport      float64 // share of the discount the supplier funds (Trade only)
	DisplayCost       float64 // fixed display cost (Trade only)
	ExpectedUnits     float64
	BaseUnits         float64
	Price             float64
	Margin            float64
	BaseProfit        float64
	PromoProfit       float64
	DiscountCostNet   float64 // discount cost after the supplier rebate
	InvestCost        float64 // net discount cost + display + overhead, floored at 1
	IncrementalProfit float64
	ROI               float64
}

// Evaluator scores discount candidates for one (store, category, day) at a
// time. Reference tables are read-only; evaluation has no side effects.
type Evaluator struct {
	logger *zap.Logger
	stores []catalog.Store
}

// NewEvaluator creates an Evaluator over the given store set.
func NewEvaluator(logger *zap.Logger, stores []catalog.Store) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{logger: logger, stores: stores}
}

// MinimumROI returns the ROI floor for a day with the given combined boost.
// High-traffic days accept a lower floor because absolute volume compensates.
func MinimumROI(dayBoost float64) float64 {
	if dayBoost >= constants.BoostedDayThreshold {
		return constants.MinROIBoostedDay
	}
	return constants.MinROINormalDay
}

// EvaluateCategory generates the bounded candidate set for one (store,
// category, day), filters by profitability and the day's ROI floor, and
// returns survivors ranked by (incremental profit, ROI) descending. An empty
// result means no viable promotion for this category today.
func (e *Evaluator) EvaluateCategory(day time.Time, store catalog.Store, cat catalog.Category, events []calendar.Event) []Option {
	price := catalog.AveragePrice(cat.Name)
	margin := catalog.Margin(cat.Name)
	elasticity := catalog.Elasticity(cat.Name, cat.Brands)
	baseUnits := (cat.WeeklySales / constants.DaysPerWeek) * StoreScale(store, e.stores)

	boost, focus := calendar.BoostFor(events, day)
	focusBonus := 0.0
	if calendar.FocusIncludes(focus, cat.Name) {
		focusBonus = constants.FocusElasticityBonus
	}

	var options []Option
	for _, d := range inStoreDiscounts {
		options = append(options, evalOption(cat.Name, TypeInStore, d, 0, 0,
			price, margin, elasticity, focusBonus, baseUnits, boost))
	}
	if catalog.TradeEligible(cat.Name, cat.Brands) {
		for _, d := range tradeDiscounts {
			support := catalog.TradeSupportRate(cat.Name, d)
			options = append(options, evalOption(cat.Name, TypeTrade, d, support, tradeDisplayCost(d),
				price, margin, elasticity, focusBonus, baseUnits, boost))
		}
	}

	minROI := MinimumROI(boost)
	kept := options[:0]
	for _, o := range options {
		if o.IncrementalProfit > 0 && o.ROI >= minROI {
			kept = append(kept, o)
		}
	}
	sortOptions(kept)

	e.logger.Debug("evaluated category",
		zap.Int("store", store.ID),
		zap.String("category", cat.Name),
		zap.Float64("dayBoost", boost),
		zap.Int("survivors", len(kept)),
	)
	return kept
}

// evalOption computes the full economics of one discount candidate.
func evalOption(category, promoType string, discount, supportRate, displayCost,
	price, margin, elasticity, focusBonus, baseUnits, boost float64) Option {

	uplift := (elasticity + focusBonus) * discount * constants.ElasticityDamping
	units := mathutil.Clamp(
		baseUnits*(1.0+uplift)*boost*constants.BaselineTrafficFactor,
		baseUnits*constants.UnitsFloorRatio,
		baseUnits*constants.UnitsCeilingRatio,
	)

	newPrice := price * (1.0 - discount)
	baseProfit := baseUnits * price * margin
	tradeRebate := units * price * (supportRate * discount)
	promoProfit := units*newPrice*margin + tradeRebate - displayCost
	incremental := promoProfit - baseProfit
	discountCostNet := units*price*discount - tradeRebate
	invest := mathutil.Max(constants.MinimumInvestment,
		discountCostNet+displayCost+constants.OperationalOverhead)

	return Option{
		Category:          category,
		PromoType:         promoType,
		Discount:          discount,
		TradeSupport:      supportRate,
		DisplayCost:       displayCost,
		ExpectedUnits:     units,
		BaseUnits:         baseUnits,
		Price:             price,
		Margin:            margin,
		BaseProfit:        baseProfit,
		PromoProfit:       promoProfit,
		DiscountCostNet:   discountCostNet,
		InvestCost:        invest,
		IncrementalProfit: incremental,
		ROI:               incremental / invest,
	}
}

// tradeDisplayCost tiers the fixed display cost by discount depth.
func tradeDisplayCost(discount float64) float64 {
	switch {
	case discount >= 0.25:
		return 120000
	case discount >= 0.20:
		return 100000
	default:
		return 80000
	}
}

// sortOptions ranks by incremental profit first, ROI as tie-break, descending.
func sortOptions(options []Option) {
	sort.SliceStable(options, func(i, j int) bool {
		if options[i].IncrementalProfit != options[j].IncrementalProfit {
			return options[i].IncrementalProfit > options[j].IncrementalProfit
		}
		return options[i].ROI > options[j].ROI
	})
}
