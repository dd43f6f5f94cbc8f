package catalog

// Group tags a category for the plan selector's diversity cap.
type Group string

// Category groups.
const (
	GroupStaples     Group = "Staples"
	GroupBeverage    Group = "Beverage"
	GroupSnack       Group = "Snack"
	GroupDairyFrozen Group = "DairyFrozen"
	GroupFrozenMeal  Group = "FrozenMeal"
	GroupFresh       Group = "Fresh"
	GroupCondiment   Group = "Condiment"
	GroupOther       Group = "Other"
)

// categoryGroups is the single enumerated category→group mapping, built once.
var categoryGroups = map[string]Group{
	"Beras": GroupStaples, "Gula": GroupStaples, "Garam": GroupStaples,
	"Minyak Goreng": GroupStaples, "Bihun": GroupStaples, "Pasta": GroupStaples,
	"Mie Instan": GroupStaples,

	"Air Mineral": GroupBeverage, "Soda": GroupBeverage, "Minuman Isotonik": GroupBeverage,
	"Jus Kemasan": GroupBeverage, "Teh": GroupBeverage, "Kopi Bubuk": GroupBeverage,
	"Kopi Kemasan": GroupBeverage,

	"Biskuit": GroupSnack, "Keripik": GroupSnack, "Permen": GroupSnack,
	"Gulali": GroupSnack, "Cokelat": GroupSnack, "Kuaci": GroupSnack,
	"Marshmallow": GroupSnack, "Makaroni": GroupSnack, "Roti": GroupSnack,
	"Sereal": GroupSnack, "Kacang": GroupSnack,

	"Susu Bubuk": GroupDairyFrozen, "Susu Kemasan": GroupDairyFrozen,
	"Yogurt": GroupDairyFrozen, "Keju": GroupDairyFrozen, "Mentega": GroupDairyFrozen,
	"Krim": GroupDairyFrozen, "Ice Cream": GroupDairyFrozen,

	"Nugget": GroupFrozenMeal, "Kentang Goreng": GroupFrozenMeal,

	"Daging Segar": GroupFresh, "Seafood Segar": GroupFresh, "Sayur-Sayuran": GroupFresh,
	"Buah-Buahan": GroupFresh, "Buah Kering": GroupFresh, "Telur": GroupFresh,

	"Sirup": GroupCondiment, "Saos": GroupCondiment, "Kecap": GroupCondiment,
	"Penyedap Rasa": GroupCondiment, "Kaldu Jamur": GroupCondiment,
	"Mayones": GroupCondiment, "Selai": GroupCondiment, "Kornet": GroupCondiment,
	"Sarden Kaleng": GroupCondiment,
}

// GroupOf returns the diversity group for a category, GroupOther when unmapped.
func GroupOf(category string) Group {
	if g, ok := categoryGroups[category]; ok {
		return g
	}
	return GroupOther
}
