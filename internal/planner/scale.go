package planner

import (
	"math"

	"github.com/jackmart/promo-planner/internal/catalog"
)

// Damping exponents for the store scale sub-indices. They compress the spread
// so a store twice the network average does not draw twice the promotional
// lift (2^0.3 ≈ 1.23).
const (
	sizeExponent  = 0.3
	skuExponent   = 0.3
	staffExponent = 0.2
)

// StoreScale converts a store's physical and operational attributes into a
// dimensionless demand-scaling factor relative to the network average.
func StoreScale(store catalog.Store, allStores []catalog.Store) float64 {
	var sumSize, sumSKU, sumStaff float64
	for _, s := range allStores {
		sumSize += s.SizeM2
		sumSKU += float64(s.SKUCount)
		sumStaff += float64(s.Staff)
	}
	n := float64(len(allStores))
	avgSize := sumSize / n
	avgSKU := sumSKU / n
	avgStaff := sumStaff / n

	sizeIdx := math.Pow(store.SizeM2/avgSize, sizeExponent)
	skuIdx := math.Pow(float64(store.SKUCount)/avgSKU, skuExponent)
	staffIdx := math.Pow(float64(store.Staff)/avgStaff, staffExponent)
	return sizeIdx * skuIdx * staffIdx
}
