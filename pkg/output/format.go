// Package output provides utilities for formatting and displaying promotion
// plans.
package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jackmart/promo-planner/internal/calendar"
	"github.com/jackmart/promo-planner/internal/planner"
	"github.com/jackmart/promo-planner/pkg/datetime"
	"github.com/jackmart/promo-planner/pkg/format"
)

const ruleWidth = 100

// PrintRunHeader outputs the run banner: plan date, target, and any active
// calendar events with their focus categories.
func PrintRunHeader(plan planner.Plan, targetPerStore float64) {
	day := plan.Date
	events := calendar.BuildYear(day.Year())
	boost, focus := calendar.BoostFor(events, day)

	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Supermarket promotion planner")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Plan date: %s\n", day.Format(datetime.DateTimeLayout))
	fmt.Printf("Minimum incremental profit target per store: %s\n", format.Rupiah(targetPerStore))
	if boost > 1.0 {
		fmt.Printf("Event boost: %.2fx - %s\n", boost, strings.Join(calendar.EventsOn(events, day), ", "))
		if len(focus) > 0 && !containsAll(focus) {
			fmt.Printf("Focus categories: %s\n", strings.Join(focus, ", "))
		}
	}
}

func containsAll(focus []string) bool {
	for _, f := range focus {
		if f == calendar.FocusAll {
			return true
		}
	}
	return false
}

// PrettyFormat outputs the full human-readable daily report: the per-store
// summary block followed by the top-N campaigns per store.
func PrettyFormat(plan planner.Plan, targetPerStore float64, topN int) {
	grand := 0
	for _, s := range plan.Summaries {
		grand += s.IncrementalProfitTotal
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", ruleWidth))
	fmt.Printf("DAILY PROFIT SUMMARY %s — ALL STORES\n", plan.Date.Format(datetime.DateTimeLayout))
	for _, s := range plan.Summaries {
		fmt.Printf(" Store %2d | Promos: %2d/%2d | Incremental: %s | Avg ROI: %.3f\n",
			s.StoreID, s.PromosScheduled, s.MaxPromosAllowed,
			format.Rupiah(float64(s.IncrementalProfitTotal)), s.AvgROI)
	}
	fmt.Println(strings.Repeat("-", ruleWidth))
	fmt.Printf(" TOTAL (%d stores) Incremental Profit: %s\n", len(plan.Summaries), format.Rupiah(float64(grand)))
	if len(plan.Summaries) > 0 {
		fmt.Printf(" Average per Store: %s | Target was: %s\n",
			format.Rupiah(float64(grand)/float64(len(plan.Summaries))), format.Rupiah(targetPerStore))
	}
	fmt.Println(strings.Repeat("=", ruleWidth))

	storeIDs := make([]int, 0, len(plan.ByStore))
	for id := range plan.ByStore {
		storeIDs = append(storeIDs, id)
	}
	sort.Ints(storeIDs)
	for _, id := range storeIDs {
		printStoreCampaigns(id, plan.ByStore[id], targetPerStore, topN)
	}
}

func printStoreCampaigns(storeID int, chosen []planner.Option, targetPerStore float64, topN int) {
	n := topN
	if n > len(chosen) {
		n = len(chosen)
	}
	fmt.Printf("\nStore %d — TOP %d campaigns (by profit):\n", storeID, n)
	header := fmt.Sprintf("%-18s%-10s%5s  %26s  %17s  %8s  %13s  %13s  %7s",
		"Category", "Type", "Disc", "Price→Promo", "Base→Exp Units", "Uplift%", "Investment", "IncrProfit", "ROI")
	fmt.Println(header)
	fmt.Println(strings.Repeat("-", len(header)))
	for _, o := range chosen[:n] {
		newPrice := o.Price * (1 - o.Discount)
		upliftPct := (o.ExpectedUnits/o.BaseUnits - 1) * 100
		fmt.Printf("%-18s%-10s%4d%%  %12s→%-13s  %7.1f→%-8.1f  %7.1f%%  %13s  %13s  %7.2f\n",
			truncate(o.Category, 18), o.PromoType, int(o.Discount*100+0.5),
			format.Rupiah(o.Price), format.Rupiah(newPrice),
			o.BaseUnits, o.ExpectedUnits, upliftPct,
			format.Rupiah(o.InvestCost), format.Rupiah(o.IncrementalProfit), o.ROI)
	}

	var totBase, totPromo, totInvest, totIncr float64
	tradeCount := 0
	for _, o := range chosen {
		totBase += o.BaseProfit
		totPromo += o.PromoProfit
		totInvest += o.InvestCost
		totIncr += o.IncrementalProfit
		if o.PromoType == planner.TypeTrade {
			tradeCount++
		}
	}
	avgROI := 0.0
	if totInvest > 0 {
		avgROI = totIncr / totInvest
	}
	fmt.Println("  " + strings.Repeat("-", len(header)-2))
	fmt.Printf("  Baseline profit: %s | Promotion-day profit: %s\n", format.Rupiah(totBase), format.Rupiah(totPromo))
	fmt.Printf("  Total investment: %s | Incremental profit: %s | Avg ROI: %.2f\n",
		format.Rupiah(totInvest), format.Rupiah(totIncr), avgROI)
	fmt.Printf("  Mix: %d Trade + %d In-Store | Target achievement: %.1fx\n",
		tradeCount, len(chosen)-tradeCount, totIncr/targetPerStore)
}

// PrintCategoryPerformance outputs the cross-store category analytics table.
func PrintCategoryPerformance(plan planner.Plan) {
	stats := plan.CategoryPerformance()
	fmt.Println()
	fmt.Println(strings.Repeat("=", ruleWidth))
	fmt.Println("CATEGORY PERFORMANCE ANALYSIS")
	fmt.Println(strings.Repeat("=", ruleWidth))
	fmt.Printf("%-18s%7s%15s%12s%9s%12s%15s\n",
		"Category", "Stores", "Total Profit", "Avg Profit", "Avg ROI", "Avg Uplift%", "Trade/In-Store")
	fmt.Println(strings.Repeat("-", ruleWidth))
	limit := 15
	if limit > len(stats) {
		limit = len(stats)
	}
	for _, s := range stats[:limit] {
		fmt.Printf("%-18s%6d %13s %10s %8.2f %10.1f%% %13s\n",
			truncate(s.Category, 17), s.StoreCount,
			format.Rupiah(s.TotalProfit), format.Rupiah(s.AvgProfit),
			s.AvgROI, s.AvgUpliftPct,
			fmt.Sprintf("%d/%d", s.TradeCount, s.InStoreCount))
	}
}

// PrintChainSummary outputs the chain-level optimization summary.
func PrintChainSummary(plan planner.Plan) {
	s := plan.Chain()
	fmt.Println()
	fmt.Println(strings.Repeat("=", ruleWidth))
	fmt.Println("OPTIMIZATION SUMMARY & INSIGHTS")
	fmt.Println(strings.Repeat("=", ruleWidth))
	fmt.Printf("Total campaigns: %d (%d Trade + %d In-Store)\n",
		s.TotalCampaigns, s.TradeCampaigns, s.InStoreCampaigns)
	fmt.Printf("Total investment: %s\n", format.Rupiah(s.TotalInvestment))
	fmt.Printf("Total incremental profit: %s\n", format.Rupiah(s.TotalProfit))
	fmt.Printf("Overall ROI: %.2f\n", s.OverallROI)
	if s.TotalCampaigns > 0 {
		fmt.Printf("Average profit per campaign: %s\n", format.Rupiah(s.ProfitPerCampaign))
	}
	if s.CostPerRupiah > 0 {
		fmt.Printf("Cost per Rupiah earned: Rp %.2f\n", s.CostPerRupiah)
	}
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
