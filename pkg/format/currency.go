package format

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Rupiah returns a currency string with the Rp prefix and dot-grouped
// thousands rounded to whole Rupiah (e.g., "Rp1.234.567").
func Rupiah(amount float64) string {
	rounded := int64(math.Round(math.Abs(amount)))
	grouped := strings.ReplaceAll(printer.Sprintf("%d", rounded), ",", ".")
	if amount < 0 {
		return "-Rp" + grouped
	}
	return "Rp" + grouped
}

// Percent renders a fraction as a percentage with one decimal (e.g., "22.0%").
func Percent(fraction float64) string {
	return printer.Sprintf("%.1f%%", fraction*100)
}
