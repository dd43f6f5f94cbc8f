// Package constants provides shared constants for the promo-planner application.
package constants

// DateTimeLayout is the format expected for plan dates on the CLI and in
// config files, and is also the output date format.
const DateTimeLayout = "2006-01-02"

// Promotion economics constants
const (
	// DaysPerWeek converts weekly category sales into a daily baseline
	DaysPerWeek = 7.0

	// ElasticityDamping prevents full pass-through of elasticity into uplift
	ElasticityDamping = 0.85

	// FocusElasticityBonus is added to elasticity when a category is in the
	// day's focus set
	FocusElasticityBonus = 0.15

	// BaselineTrafficFactor is the constant traffic factor applied to every
	// projected volume
	BaselineTrafficFactor = 1.02

	// UnitsFloorRatio and UnitsCeilingRatio clamp projected units relative to
	// the no-promotion baseline
	UnitsFloorRatio   = 0.95
	UnitsCeilingRatio = 2.0

	// OperationalOverhead is the fixed per-promotion overhead in Rupiah
	OperationalOverhead = 50000.0

	// MinimumInvestment floors the investment to avoid ROI degeneracy
	MinimumInvestment = 1.0

	// ElasticityCap bounds the brand-adjusted elasticity
	ElasticityCap = 1.5
)

// ROI thresholds
const (
	// BoostedDayThreshold is the combined day boost at or above which the
	// relaxed ROI floor applies
	BoostedDayThreshold = 1.2

	// MinROIBoostedDay is the ROI floor on strongly boosted days
	MinROIBoostedDay = 0.08

	// MinROINormalDay is the ROI floor on all other days
	MinROINormalDay = 0.12
)

// Plan selection constants
const (
	// AbsoluteMaxPromos caps the first-pass promotion count per store
	AbsoluteMaxPromos = 12

	// RelaxedMaxPromos caps the relaxed-pass promotion count per store
	RelaxedMaxPromos = 15

	// RelaxationExtraPromos is added to the store cap during relaxation
	RelaxationExtraPromos = 3

	// GroupCap limits promotions per category group in the first pass
	GroupCap = 2

	// RelaxedGroupCap limits promotions per category group during relaxation
	RelaxedGroupCap = 3

	// TargetShortfallRatio triggers relaxation when total incremental profit
	// falls below this share of the per-store target
	TargetShortfallRatio = 0.7
)

// CLI defaults
const (
	// DefaultTargetPerStore is the default daily incremental-profit target per
	// store in Rupiah
	DefaultTargetPerStore = 1000000.0

	// DefaultTopN is the default number of campaigns printed per store
	DefaultTopN = 8

	// DefaultDateHorizonDays bounds the search for the best upcoming boosted
	// day when no date is given
	DefaultDateHorizonDays = 30
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// DefaultPlanFile is the default path for the plan detail CSV
	DefaultPlanFile = "promotion_plan.csv"

	// DefaultSummaryFile is the default path for the plan summary CSV
	DefaultSummaryFile = "promotion_summary.csv"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"
)
