package planner

import "sort"

// CategoryStats aggregates how one category performed across the chain's
// selected promotions.
type CategoryStats struct {
	Category     string
	StoreCount   int
	TotalProfit  float64
	AvgProfit    float64
	AvgROI       float64
	AvgUpliftPct float64
	TradeCount   int
	InStoreCount int
}

// ChainSummary aggregates the whole plan for the optimization report.
type ChainSummary struct {
	TotalCampaigns    int
	TradeCampaigns    int
	InStoreCampaigns  int
	TotalInvestment   float64
	TotalProfit       float64
	OverallROI        float64
	ProfitPerCampaign float64
	CostPerRupiah     float64
}

// CategoryPerformance ranks categories by total incremental profit across all
// stores in the plan.
func (p Plan) CategoryPerformance() []CategoryStats {
	byCategory := make(map[string]*CategoryStats)
	for _, promos := range p.ByStore {
		for _, o := range promos {
			s, ok := byCategory[o.Category]
			if !ok {
				s = &CategoryStats{Category: o.Category}
				byCategory[o.Category] = s
			}
			s.StoreCount++
			s.TotalProfit += o.IncrementalProfit
			s.AvgROI += o.ROI
			s.AvgUpliftPct += (o.ExpectedUnits/o.BaseUnits - 1) * 100
			if o.PromoType == TypeTrade {
				s.TradeCount++
			} else {
				s.InStoreCount++
			}
		}
	}

	stats := make([]CategoryStats, 0, len(byCategory))
	for _, s := range byCategory {
		n := float64(s.StoreCount)
		s.AvgProfit = s.TotalProfit / n
		s.AvgROI /= n
		s.AvgUpliftPct /= n
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalProfit != stats[j].TotalProfit {
			return stats[i].TotalProfit > stats[j].TotalProfit
		}
		return stats[i].Category < stats[j].Category
	})
	return stats
}

// Chain summarizes campaign counts, investment, and profit across all stores.
func (p Plan) Chain() ChainSummary {
	var s ChainSummary
	for _, promos := range p.ByStore {
		for _, o := range promos {
			s.TotalCampaigns++
			s.TotalInvestment += o.InvestCost
			s.TotalProfit += o.IncrementalProfit
			if o.PromoType == TypeTrade {
				s.TradeCampaigns++
			}
		}
	}
	s.InStoreCampaigns = s.TotalCampaigns - s.TradeCampaigns
	if s.TotalInvestment > 0 {
		s.OverallROI = s.TotalProfit / s.TotalInvestment
	}
	if s.TotalCampaigns > 0 {
		s.ProfitPerCampaign = s.TotalProfit / float64(s.TotalCampaigns)
	}
	if s.TotalProfit > 0 {
		s.CostPerRupiah = s.TotalInvestment / s.TotalProfit
	}
	return s
}
