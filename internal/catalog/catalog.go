// Package catalog holds the static reference data for the supermarket chain:
// store attributes, category rows, and the per-category price, margin,
// elasticity, and trade-support lookup tables. Unknown categories resolve to
// documented defaults rather than failing; the tables are the maintainers' own
// data and the system favors graceful degradation.
package catalog

// Store describes the static attributes of one store. Load-once, read-only.
type Store struct {
	ID       int
	OpenYear int
	SizeM2   float64
	SKUCount int
	Staff    int
}

// Category describes one product category row. The weekly promotion count is
// descriptive and carried through without entering any computation.
type Category struct {
	Name         string
	SKUCount     int
	Brands       int
	WeeklySales  float64
	WeeklyPromos int
}

// Stores returns the chain's store table.
func Stores() []Store {
	return []Store{
		{ID: 1, OpenYear: 2015, SizeM2: 180, SKUCount: 6843, Staff: 4},
		{ID: 2, OpenYear: 2017, SizeM2: 193, SKUCount: 12311, Staff: 5},
		{ID: 3, OpenYear: 2018, SizeM2: 220, SKUCount: 14501, Staff: 6},
		{ID: 4, OpenYear: 2020, SizeM2: 195, SKUCount: 13122, Staff: 5},
		{ID: 5, OpenYear: 2022, SizeM2: 175, SKUCount: 7372, Staff: 3},
		{ID: 6, OpenYear: 2024, SizeM2: 230, SKUCount: 14983, Staff: 6},
		{ID: 7, OpenYear: 2025, SizeM2: 320, SKUCount: 18374, Staff: 7},
	}
}

// Categories returns the category table.
func Categories() []Category {
	return []Category{
		{"Susu Bubuk", 86, 14, 567, 15},
		{"Biskuit", 37, 27, 362, 8},
		{"Sirup", 29, 11, 782, 7},
		{"Soda", 53, 7, 624, 9},
		{"Cokelat", 67, 21, 449, 6},
		{"Roti", 64, 15, 341, 9},
		{"Sereal", 107, 11, 972, 20},
		{"Mie Instan", 186, 8, 765, 25},
		{"Kopi Bubuk", 165, 9, 378, 18},
		{"Sarden Kaleng", 86, 5, 246, 5},
		{"Jus Kemasan", 109, 15, 289, 13},
		{"Buah Kering", 172, 21, 480, 15},
		{"Beras", 134, 19, 290, 7},
		{"Teh", 184, 23, 580, 6},
		{"Pasta", 152, 25, 732, 6},
		{"Mayones", 180, 13, 665, 18},
		{"Kecap", 165, 8, 238, 10},
		{"Penyedap Rasa", 79, 3, 138, 8},
		{"Saos", 194, 20, 456, 20},
		{"Garam", 139, 10, 304, 6},
		{"Gula", 168, 13, 478, 16},
		{"Kaldu Jamur", 98, 11, 386, 14},
		{"Selai", 186, 22, 467, 13},
		{"Permen", 179, 18, 348, 5},
		{"Gulali", 65, 5, 276, 5},
		{"Makaroni", 162, 8, 568, 15},
		{"Marshmallow", 132, 10, 397, 9},
		{"Kuaci", 73, 3, 238, 8},
		{"Yogurt", 195, 8, 369, 22},
		{"Keju", 168, 12, 679, 13},
		{"Nugget", 175, 13, 789, 15},
		{"Air Mineral", 195, 8, 923, 20},
		{"Minuman Isotonik", 164, 17, 685, 18},
		{"Keripik", 172, 20, 876, 18},
		{"Susu Kemasan", 154, 12, 687, 13},
		{"Kopi Kemasan", 189, 11, 389, 15},
		{"Kacang", 165, 10, 478, 17},
		{"Buah-Buahan", 179, 13, 567, 8},
		{"Sayur-Sayuran", 196, 11, 267, 11},
		{"Ice Cream", 174, 16, 465, 6},
		{"Kornet", 136, 9, 585, 9},
		{"Daging Segar", 184, 8, 765, 21},
		{"Minyak Goreng", 179, 13, 568, 8},
		{"Kentang Goreng", 163, 7, 349, 13},
		{"Telur", 193, 9, 465, 15},
		{"Seafood Segar", 136, 18, 675, 20},
		{"Mentega", 120, 15, 367, 6},
		{"Krim", 42, 10, 209, 8},
		{"Bihun", 113, 13, 549, 7},
	}
}
