package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/mathtrade/tradegraph"
)

// leftColumnWidth is the fixed column width spec §6 prescribes for the
// leftmost field of tabular lines in TRADE LOOPS and ITEM SUMMARY.
const leftColumnWidth = 50

// padLeftColumn left-justifies field and pads it out to leftColumnWidth. A
// field already at or past the width is left untouched (no truncation):
// spec only requires padding, never clipping, a long owner/item name.
func padLeftColumn(field string) string {
	return fmt.Sprintf("%-*s", leftColumnWidth, field)
}

// describe renders an item as "(owner) id", the display form every section
// uses for an item reference (spec §4.9 examples).
func describe(g *tradegraph.Graph, item int) string {
	it := g.Item(item)

	return fmt.Sprintf("(%s) %s", it.Owner, it.ID)
}

// formatPercent renders 100*t/n rounded to 3 significant digits, fixed-point
// (spec §4.9: "percentage to 3 significant digits, fixed-point"). n == 0
// renders as 0.
func formatPercent(t, n int) string {
	if n == 0 {
		return "0"
	}

	return formatSigFigs(100 * float64(t) / float64(n))
}

// formatSigFigs rounds x to 3 significant digits and renders it without
// exponential notation, with just enough decimal places to show all 3.
func formatSigFigs(x float64) string {
	const sig = 3
	if x == 0 {
		return "0.00"
	}

	magnitudeDigits := int(math.Floor(math.Log10(math.Abs(x)))) + 1
	scale := math.Pow(10, float64(sig-magnitudeDigits))
	rounded := math.Round(x*scale) / scale

	// Rounding can carry the magnitude up a digit (e.g. 99.96 -> 100.0);
	// recompute from the rounded value so the decimal count stays correct.
	magnitudeDigits = int(math.Floor(math.Log10(math.Abs(rounded)))) + 1
	decimals := sig - magnitudeDigits
	if decimals < 0 {
		decimals = 0
	}

	return strconv.FormatFloat(rounded, 'f', decimals, 64)
}
