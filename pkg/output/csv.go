package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/jackmart/promo-planner/internal/planner"
)

// PlanHeader is the column list of the plan detail CSV.
var PlanHeader = []string{
	"date", "store_id", "promo_type", "category", "discount_pct", "price_avg",
	"margin_pct", "base_units", "expected_units", "uplift_pct", "base_profit",
	"promo_profit", "discount_cost_net", "display_cost", "overhead",
	"invest_cost", "incremental_profit", "roi", "trade_support_of_disc",
}

// SummaryHeader is the column list of the plan summary CSV.
var SummaryHeader = []string{
	"date", "store_id", "max_promos_allowed", "promos_scheduled",
	"incremental_profit_total", "avg_roi",
}

// WritePlanCSV writes the plan detail table with a header row.
func WritePlanCSV(path string, details []planner.Detail) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create plan file %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(PlanHeader); err != nil {
		return err
	}
	for _, d := range details {
		record := []string{
			d.Date,
			strconv.Itoa(d.StoreID),
			d.PromoType,
			d.Category,
			strconv.Itoa(d.DiscountPct),
			strconv.Itoa(d.PriceAvg),
			formatFloat(d.MarginPct, 1),
			formatFloat(d.BaseUnits, 1),
			formatFloat(d.ExpectedUnits, 1),
			formatFloat(d.UpliftPct, 1),
			strconv.Itoa(d.BaseProfit),
			strconv.Itoa(d.PromoProfit),
			strconv.Itoa(d.DiscountCostNet),
			strconv.Itoa(d.DisplayCost),
			strconv.Itoa(d.Overhead),
			strconv.Itoa(d.InvestCost),
			strconv.Itoa(d.IncrementalProfit),
			formatFloat(d.ROI, 3),
			formatFloat(d.TradeSupportOfDisc, 1),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteSummaryCSV writes the plan summary table with a header row.
func WriteSummaryCSV(path string, summaries []planner.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(SummaryHeader); err != nil {
		return err
	}
	for _, s := range summaries {
		record := []string{
			s.Date,
			strconv.Itoa(s.StoreID),
			strconv.Itoa(s.MaxPromosAllowed),
			strconv.Itoa(s.PromosScheduled),
			strconv.Itoa(s.IncrementalProfitTotal),
			formatFloat(s.AvgROI, 3),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatFloat(v float64, places int) string {
	return strconv.FormatFloat(v, 'f', places, 64)
}
