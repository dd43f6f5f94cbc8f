package planner

import (
	"math"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/jackmart/promo-planner/internal/calendar"
	"github.com/jackmart/promo-planner/internal/catalog"
	"github.com/jackmart/promo-planner/pkg/constants"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// plainDay2025 has no calendar events (boost 1.0).
var plainDay2025 = day(2025, time.January, 5)

// boostedDay2025 is Singles Day stacked with the 11.11 twin date (1.35).
var boostedDay2025 = day(2025, time.November, 11)

func findCategory(t *testing.T, name string) catalog.Category {
	t.Helper()
	for _, c := range catalog.Categories() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("category %s not in catalog", name)
	return catalog.Category{}
}

func TestMinimumROI(t *testing.T) {
	tests := []struct {
		name     string
		boost    float64
		expected float64
	}{
		{"plain day", 1.0, constants.MinROINormalDay},
		{"just below threshold", 1.1999, constants.MinROINormalDay},
		{"exactly at threshold", 1.2, constants.MinROIBoostedDay},
		{"above threshold", 1.35, constants.MinROIBoostedDay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MinimumROI(tt.boost); got != tt.expected {
				t.Errorf("MinimumROI(%v) = %v, expected %v", tt.boost, got, tt.expected)
			}
		})
	}
}

func TestEvalOptionClampsUnits(t *testing.T) {
	tests := []struct {
		name       string
		elasticity float64
		discount   float64
		boost      float64
	}{
		{"mild uplift", 0.9, 0.10, 1.0},
		{"extreme uplift clamped at ceiling", 1.5, 0.25, 3.0},
		{"heavy boost", 1.2, 0.20, 1.35},
	}
	baseUnits := 66.97
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := evalOption("Soda", TypeInStore, tt.discount, 0, 0,
				7000, 0.22, tt.elasticity, 0, baseUnits, tt.boost)
			lo := baseUnits * constants.UnitsFloorRatio
			hi := baseUnits * constants.UnitsCeilingRatio
			if o.ExpectedUnits < lo || o.ExpectedUnits > hi {
				t.Errorf("ExpectedUnits %v outside clamp [%v, %v]", o.ExpectedUnits, lo, hi)
			}
		})
	}
}

// The Soda In-Store 10% scenario: 7 brands keeps the brand multiplier at 1.0,
// a plain day applies no boost or focus bonus, and the projected units land
// inside the clamp window.
func TestSodaInStoreTenPercentScenario(t *testing.T) {
	stores := catalog.Stores()
	soda := findCategory(t, "Soda")

	elasticity := catalog.Elasticity(soda.Name, soda.Brands)
	if elasticity != 0.9 {
		t.Fatalf("Soda elasticity = %v, expected 0.9", elasticity)
	}

	baseUnits := (soda.WeeklySales / constants.DaysPerWeek) * StoreScale(stores[0], stores)
	o := evalOption(soda.Name, TypeInStore, 0.10, 0, 0,
		catalog.AveragePrice(soda.Name), catalog.Margin(soda.Name),
		elasticity, 0, baseUnits, 1.0)

	// uplift = 0.9 * 0.10 * 0.85, then the 2% traffic factor
	expected := baseUnits * (1 + 0.9*0.10*0.85) * 1.02
	if math.Abs(o.ExpectedUnits-expected) > 1e-9 {
		t.Errorf("ExpectedUnits = %v, expected %v", o.ExpectedUnits, expected)
	}
	if o.ExpectedUnits < baseUnits*constants.UnitsFloorRatio || o.ExpectedUnits > baseUnits*constants.UnitsCeilingRatio {
		t.Errorf("ExpectedUnits %v outside clamp bounds", o.ExpectedUnits)
	}
}

// Soda has only 7 brands but sits on the trade allow-list, so Trade
// candidates are generated for it.
func TestSodaTradeCandidatesGenerated(t *testing.T) {
	soda := findCategory(t, "Soda")
	if soda.Brands != 7 {
		t.Fatalf("Soda brands = %d, expected 7", soda.Brands)
	}
	if !catalog.TradeEligible(soda.Name, soda.Brands) {
		t.Fatal("Soda must be trade-eligible via the allow-list")
	}
}

func TestNoTradeOptionsForIneligibleCategory(t *testing.T) {
	e := NewEvaluator(zap.NewNop(), catalog.Stores())
	events := calendar.BuildYear(2025)
	// Penyedap Rasa: 3 brands, not allow-listed.
	cat := findCategory(t, "Penyedap Rasa")
	for _, store := range catalog.Stores() {
		for _, o := range e.EvaluateCategory(boostedDay2025, store, cat, events) {
			if o.PromoType == TypeTrade {
				t.Errorf("Trade option produced for ineligible category %s", cat.Name)
			}
		}
	}
}

func TestSurvivorsRespectFilter(t *testing.T) {
	e := NewEvaluator(zap.NewNop(), catalog.Stores())
	stores := catalog.Stores()

	tests := []struct {
		name   string
		day    time.Time
		minROI float64
	}{
		{"plain day", plainDay2025, constants.MinROINormalDay},
		{"boosted day", boostedDay2025, constants.MinROIBoostedDay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := calendar.BuildYear(tt.day.Year())
			for _, cat := range catalog.Categories() {
				for _, o := range e.EvaluateCategory(tt.day, stores[0], cat, events) {
					if o.IncrementalProfit <= 0 {
						t.Errorf("%s: survivor with non-positive incremental profit %v", cat.Name, o.IncrementalProfit)
					}
					if o.ROI < tt.minROI {
						t.Errorf("%s: survivor ROI %v below floor %v", cat.Name, o.ROI, tt.minROI)
					}
				}
			}
		})
	}
}

func TestOptionInvariants(t *testing.T) {
	e := NewEvaluator(zap.NewNop(), catalog.Stores())
	events := calendar.BuildYear(2025)
	for _, store := range catalog.Stores() {
		for _, cat := range catalog.Categories() {
			for _, o := range e.EvaluateCategory(boostedDay2025, store, cat, events) {
				if o.InvestCost < constants.MinimumInvestment {
					t.Errorf("%s: investment %v below floor", cat.Name, o.InvestCost)
				}
				if math.Abs(o.ROI-o.IncrementalProfit/o.InvestCost) > 1e-9 {
					t.Errorf("%s: ROI %v inconsistent with %v / %v", cat.Name, o.ROI, o.IncrementalProfit, o.InvestCost)
				}
				lo := o.BaseUnits * constants.UnitsFloorRatio
				hi := o.BaseUnits * constants.UnitsCeilingRatio
				if o.ExpectedUnits < lo-1e-9 || o.ExpectedUnits > hi+1e-9 {
					t.Errorf("%s: units %v outside clamp [%v, %v]", cat.Name, o.ExpectedUnits, lo, hi)
				}
			}
		}
	}
}

func TestOptionsRankedByProfitThenROI(t *testing.T) {
	e := NewEvaluator(zap.NewNop(), catalog.Stores())
	events := calendar.BuildYear(2025)
	for _, cat := range catalog.Categories() {
		opts := e.EvaluateCategory(boostedDay2025, catalog.Stores()[0], cat, events)
		for i := 1; i < len(opts); i++ {
			prev, cur := opts[i-1], opts[i]
			if prev.IncrementalProfit < cur.IncrementalProfit {
				t.Errorf("%s: options not sorted by incremental profit", cat.Name)
			}
			if prev.IncrementalProfit == cur.IncrementalProfit && prev.ROI < cur.ROI {
				t.Errorf("%s: ROI tie-break violated", cat.Name)
			}
		}
	}
}

func TestFocusBonusRaisesUplift(t *testing.T) {
	// Same candidate with and without the focus bonus; clamp not binding.
	base := evalOption("Cokelat", TypeInStore, 0.10, 0, 0, 10000, 0.38, 1.1, 0, 50, 1.0)
	focused := evalOption("Cokelat", TypeInStore, 0.10, 0, 0, 10000, 0.38, 1.1, constants.FocusElasticityBonus, 50, 1.0)
	if focused.ExpectedUnits <= base.ExpectedUnits {
		t.Errorf("focus bonus should raise projected units: %v <= %v", focused.ExpectedUnits, base.ExpectedUnits)
	}
}

func TestEmptyResultIsNormal(t *testing.T) {
	e := NewEvaluator(zap.NewNop(), catalog.Stores())
	events := calendar.BuildYear(2025)
	// Beras: low elasticity and razor-thin margin cannot clear the ROI floor
	// on a plain day.
	cat := findCategory(t, "Beras")
	opts := e.EvaluateCategory(plainDay2025, catalog.Stores()[0], cat, events)
	if len(opts) != 0 {
		t.Errorf("expected no viable options for %s on a plain day, got %d", cat.Name, len(opts))
	}
}

func TestTradeDisplayCostTiers(t *testing.T) {
	tests := []struct {
		discount float64
		expected float64
	}{
		{0.15, 80000},
		{0.20, 100000},
		{0.25, 120000},
	}
	for _, tt := range tests {
		if got := tradeDisplayCost(tt.discount); got != tt.expected {
			t.Errorf("tradeDisplayCost(%v) = %v, expected %v", tt.discount, got, tt.expected)
		}
	}
}
