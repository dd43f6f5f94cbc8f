package catalog

import "testing"

func TestLookupDefaults(t *testing.T) {
	if got := AveragePrice("Unknown Category"); got != DefaultPrice {
		t.Errorf("AveragePrice() = %v, expected default %v", got, DefaultPrice)
	}
	if got := Margin("Unknown Category"); got != DefaultMargin {
		t.Errorf("Margin() = %v, expected default %v", got, DefaultMargin)
	}
	if got := Elasticity("Unknown Category", 5); got != DefaultElasticity {
		t.Errorf("Elasticity() = %v, expected default %v", got, DefaultElasticity)
	}
	if got := TradeSupportRate("Unknown Category", 0.15); got != DefaultSupportRate {
		t.Errorf("TradeSupportRate() = %v, expected default %v", got, DefaultSupportRate)
	}
}

func TestKnownLookups(t *testing.T) {
	if got := AveragePrice("Soda"); got != 7000 {
		t.Errorf("AveragePrice(Soda) = %v, expected 7000", got)
	}
	if got := Margin("Soda"); got != 0.22 {
		t.Errorf("Margin(Soda) = %v, expected 0.22", got)
	}
}

func TestElasticityBrandSteps(t *testing.T) {
	tests := []struct {
		name     string
		category string
		brands   int
		expected float64
	}{
		{"no multiplier at 10 brands", "Soda", 10, 0.9},
		{"5% step above 10 brands", "Soda", 11, 0.9 * 1.05},
		{"10% step above 15 brands", "Soda", 16, 0.9 * 1.10},
		{"15% step above 20 brands", "Soda", 21, 0.9 * 1.15},
		{"capped at absolute bound", "Permen", 21, 1.5}, // 1.4 * 1.15 exceeds the cap
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Elasticity(tt.category, tt.brands); got != tt.expected {
				t.Errorf("Elasticity(%s, %d) = %v, expected %v", tt.category, tt.brands, got, tt.expected)
			}
		})
	}
}

func TestTradeSupportTiers(t *testing.T) {
	tests := []struct {
		name     string
		category string
		discount float64
		expected float64
	}{
		{"high tier shallow", "Sereal", 0.20, 0.30},
		{"high tier deep", "Sereal", 0.25, 0.35},
		{"medium tier shallow", "Keripik", 0.20, 0.20},
		{"medium tier deep", "Keripik", 0.25, 0.25},
		{"low tier shallow", "Beras", 0.20, 0.10},
		{"low tier deep", "Beras", 0.25, 0.15},
		{"default tier", "Telur", 0.25, 0.20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TradeSupportRate(tt.category, tt.discount); got != tt.expected {
				t.Errorf("TradeSupportRate(%s, %v) = %v, expected %v", tt.category, tt.discount, got, tt.expected)
			}
		})
	}
}

func TestTradeEligible(t *testing.T) {
	tests := []struct {
		name     string
		category string
		brands   int
		expected bool
	}{
		{"enough brands", "Kecap", 8, true},
		{"too few brands, not allow-listed", "Penyedap Rasa", 3, false},
		// Soda has 7 brands but sits on the always-eligible allow-list.
		{"allow-listed below brand threshold", "Soda", 7, true},
		{"allow-listed regardless of brands", "Sirup", 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TradeEligible(tt.category, tt.brands); got != tt.expected {
				t.Errorf("TradeEligible(%s, %d) = %v, expected %v", tt.category, tt.brands, got, tt.expected)
			}
		})
	}
}

func TestGroupOf(t *testing.T) {
	tests := []struct {
		category string
		expected Group
	}{
		{"Beras", GroupStaples},
		{"Soda", GroupBeverage},
		{"Keripik", GroupSnack},
		{"Yogurt", GroupDairyFrozen},
		{"Nugget", GroupFrozenMeal},
		{"Telur", GroupFresh},
		{"Kecap", GroupCondiment},
		{"Something Else", GroupOther},
	}
	for _, tt := range tests {
		if got := GroupOf(tt.category); got != tt.expected {
			t.Errorf("GroupOf(%s) = %v, expected %v", tt.category, got, tt.expected)
		}
	}
}

func TestEveryCategoryHasGroup(t *testing.T) {
	for _, cat := range Categories() {
		if _, ok := categoryGroups[cat.Name]; !ok {
			t.Errorf("category %s is not mapped to a group", cat.Name)
		}
	}
}

func TestReferenceTableSizes(t *testing.T) {
	if got := len(Stores()); got != 7 {
		t.Errorf("expected 7 stores, got %d", got)
	}
	if got := len(Categories()); got != 49 {
		t.Errorf("expected 49 categories, got %d", got)
	}
}
