package planner

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/jackmart/promo-planner/internal/calendar"
	"github.com/jackmart/promo-planner/internal/catalog"
	"github.com/jackmart/promo-planner/pkg/constants"
	"github.com/jackmart/promo-planner/pkg/datetime"
	"github.com/jackmart/promo-planner/pkg/mathutil"
)

// Detail is one formatted plan row per selected promotion.
type Detail struct {
	Date               string
	StoreID            int
	PromoType          string
	Category           string
	DiscountPct        int
	PriceAvg           int
	MarginPct          float64
	BaseUnits          float64
	ExpectedUnits      float64
	UpliftPct          float64
	BaseProfit         int
	PromoProfit        int
	DiscountCostNet    int
	DisplayCost        int
	Overhead           int
	InvestCost         int
	IncrementalProfit  int
	ROI                float64
	TradeSupportOfDisc float64
}

// Summary is one plan row per store.
type Summary struct {
	Date                   string
	StoreID                int
	MaxPromosAllowed       int
	PromosScheduled        int
	IncrementalProfitTotal int
	AvgROI                 float64
}

// Plan is the full daily promotion plan across the chain.
type Plan struct {
	Date      time.Time
	Details   []Detail
	Summaries []Summary
	ByStore   map[int][]Option
}

// Planner assembles per-store daily plans from evaluated options.
type Planner struct {
	logger     *zap.Logger
	evaluator  *Evaluator
	stores     []catalog.Store
	categories []catalog.Category
}

// New creates a Planner over the chain's reference data.
func New(logger *zap.Logger, stores []catalog.Store, categories []catalog.Category) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{
		logger:     logger,
		evaluator:  NewEvaluator(logger, stores),
		stores:     stores,
		categories: categories,
	}
}

// MaxPromotions returns the staffing-derived first-pass promotion cap for a
// store: larger staff can execute more concurrent promotions.
func MaxPromotions(store catalog.Store) int {
	limit := int(math.Floor(3 + 1.5*float64(store.Staff)))
	if limit > constants.AbsoluteMaxPromos {
		return constants.AbsoluteMaxPromos
	}
	return limit
}

// BuildPlan computes the daily plan for every store. Each store's selection is
// independent: candidates are the single best option per category, ranked by
// (incremental profit, ROI), picked greedily under the group diversity cap and
// the staffing cap, with a relaxation pass when the selection misses the
// profit target.
func (p *Planner) BuildPlan(day time.Time, targetPerStore float64) Plan {
	events := calendar.BuildYear(day.Year())
	plan := Plan{Date: day, ByStore: make(map[int][]Option, len(p.stores))}
	dateStr := day.Format(datetime.DateTimeLayout)

	for _, store := range p.stores {
		maxPromos := MaxPromotions(store)

		var candidates []Option
		for _, cat := range p.categories {
			opts := p.evaluator.EvaluateCategory(day, store, cat, events)
			if len(opts) > 0 {
				candidates = append(candidates, opts[0])
			}
		}
		sortOptions(candidates)

		chosen, relaxed := selectCandidates(candidates, maxPromos, targetPerStore)
		plan.ByStore[store.ID] = chosen

		p.logger.Debug("store plan selected",
			zap.Int("store", store.ID),
			zap.Int("candidates", len(candidates)),
			zap.Int("chosen", len(chosen)),
			zap.Int("maxPromos", maxPromos),
			zap.Bool("relaxed", relaxed),
		)

		totalIncremental := 0.0
		totalROI := 0.0
		for _, o := range chosen {
			plan.Details = append(plan.Details, detailRow(dateStr, store.ID, o))
			totalIncremental += o.IncrementalProfit
			totalROI += o.ROI
		}

		avgROI := 0.0
		if len(chosen) > 0 {
			avgROI = mathutil.RoundTo(totalROI/float64(len(chosen)), 3)
		}
		plan.Summaries = append(plan.Summaries, Summary{
			Date:                   dateStr,
			StoreID:                store.ID,
			MaxPromosAllowed:       maxPromos,
			PromosScheduled:        len(chosen),
			IncrementalProfitTotal: int(math.Round(totalIncremental)),
			AvgROI:                 avgROI,
		})
	}

	return plan
}

// selectCandidates runs the greedy pass and, if the profit target is missed by
// more than the shortfall ratio, a relaxation pass over the remaining
// unselected candidates with the group cap raised. Diversity yields to the
// financial target, never the other way around.
func selectCandidates(candidates []Option, maxPromos int, target float64) (chosen []Option, relaxed bool) {
	groupCount := make(map[catalog.Group]int)
	picked := make([]bool, len(candidates))

	for i, opt := range candidates {
		g := catalog.GroupOf(opt.Category)
		if groupCount[g] >= constants.GroupCap {
			continue
		}
		chosen = append(chosen, opt)
		picked[i] = true
		groupCount[g]++
		if len(chosen) >= maxPromos {
			break
		}
	}

	total := 0.0
	for _, o := range chosen {
		total += o.IncrementalProfit
	}
	if total >= constants.TargetShortfallRatio*target {
		return chosen, false
	}

	relaxedCap := maxPromos + constants.RelaxationExtraPromos
	if relaxedCap > constants.RelaxedMaxPromos {
		relaxedCap = constants.RelaxedMaxPromos
	}
	for i, opt := range candidates {
		if picked[i] {
			continue
		}
		g := catalog.GroupOf(opt.Category)
		if groupCount[g] >= constants.RelaxedGroupCap {
			continue
		}
		chosen = append(chosen, opt)
		picked[i] = true
		groupCount[g]++
		total += opt.IncrementalProfit
		if len(chosen) >= relaxedCap || total >= target {
			break
		}
	}
	return chosen, true
}

// detailRow projects an Option into the formatted plan detail row.
func detailRow(date string, storeID int, o Option) Detail {
	tradeShare := 0.0
	if o.PromoType == TypeTrade {
		tradeShare = mathutil.RoundTo(o.TradeSupport*100, 1)
	}
	return Detail{
		Date:               date,
		StoreID:            storeID,
		PromoType:          o.PromoType,
		Category:           o.Category,
		DiscountPct:        int(math.Round(o.Discount * 100)),
		PriceAvg:           int(o.Price),
		MarginPct:          mathutil.RoundTo(o.Margin*100, 1),
		BaseUnits:          mathutil.RoundTo(o.BaseUnits, 1),
		ExpectedUnits:      mathutil.RoundTo(o.ExpectedUnits, 1),
		UpliftPct:          mathutil.RoundTo((o.ExpectedUnits/o.BaseUnits-1)*100, 1),
		BaseProfit:         int(math.Round(o.BaseProfit)),
		PromoProfit:        int(math.Round(o.PromoProfit)),
		DiscountCostNet:    int(math.Round(o.DiscountCostNet)),
		DisplayCost:        int(o.DisplayCost),
		Overhead:           int(constants.OperationalOverhead),
		InvestCost:         int(math.Round(o.InvestCost)),
		IncrementalProfit:  int(math.Round(o.IncrementalProfit)),
		ROI:                mathutil.RoundTo(o.ROI, 3),
		TradeSupportOfDisc: tradeShare,
	}
}
