package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/mathtrade/cycle"
	"github.com/katalvlaran/mathtrade/option"
	"github.com/katalvlaran/mathtrade/tradegraph"
	"github.com/katalvlaran/mathtrade/wantparser"
)

// Write renders in to w as the full report: option echo, errors, missing
// items, then the three §4.9 sections in order. The only error it can
// return comes from the underlying writer (spec §7: an output failure
// degrades the caller to stdout with a warning; Write itself just reports
// the failure up for that caller to act on).
func Write(w io.Writer, in Input) error {
	ew := &errWriter{w: w}

	writeOptionEcho(ew, in.Options)

	if !in.Options.Bool(option.HideErrors) {
		writeErrors(ew, in.Diagnostics)
	}
	if in.Options.Bool(option.ShowMissing) {
		writeMissing(ew, in.Missing)
	}
	if !in.Options.Bool(option.HideLoops) {
		writeTradeLoops(ew, in)
	}
	if !in.Options.Bool(option.HideSummary) {
		writeItemSummary(ew, in)
	}
	if !in.Options.Bool(option.HideStats) {
		writeTradeStatistics(ew, in)
	}

	return ew.err
}

// errWriter collapses every fmt.Fprintf error into one sticky err, so the
// section writers below can ignore return values without risking a
// silently dropped write failure partway through the report.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func writeOptionEcho(w *errWriter, opts *option.Store) {
	w.printf("OPTIONS\n")
	if p := opts.Priority(); p != "" {
		w.printf("  %s\n", p)
	}
	for _, name := range opts.ActiveBools() {
		w.printf("  %s\n", name)
	}
	for _, is := range opts.Ints() {
		w.printf("  %s=%d\n", is.Name, is.Value)
	}
	w.printf("\n")
}

func writeErrors(w *errWriter, diags []wantparser.Diagnostic) {
	if len(diags) == 0 {
		return
	}
	w.printf("ERRORS\n")
	for _, d := range diags {
		w.printf("  - %s\n", d.String())
	}
	w.printf("\n")
}

func writeMissing(w *errWriter, missing []wantparser.Missing) {
	if len(missing) == 0 {
		return
	}
	w.printf("MISSING ITEMS\n")
	for _, m := range missing {
		w.printf("  - %s (%d)\n", m.Target, m.Count)
	}
	w.printf("\n")
}

func writeTradeLoops(w *errWriter, in Input) {
	isDummy := func(i int) bool { return in.Graph.Item(i).IsDummy }
	cycles := cycle.Decode(in.Result, isDummy)

	n := 0
	for _, c := range cycles {
		n += len(c)
	}

	w.printf("TRADE LOOPS (%d total trades):\n", n)
	for _, c := range cycles {
		for _, item := range c {
			receivesFrom := in.Result.Receive[item]
			w.printf("%sreceives  %s\n", padLeftColumn(describe(in.Graph, item)), describe(in.Graph, receivesFrom))
		}
		w.printf("\n")
	}
}

func writeItemSummary(w *errWriter, in Input) {
	items := nonDummyItems(in.Graph)
	if in.Options.Bool(option.SortByItem) {
		sort.Slice(items, func(i, j int) bool {
			return in.Graph.Item(items[i]).ID < in.Graph.Item(items[j]).ID
		})
	} else {
		sort.Slice(items, func(i, j int) bool {
			oi, oj := in.Graph.Item(items[i]).Owner, in.Graph.Item(items[j]).Owner
			if oi != oj {
				return oi < oj
			}

			return in.Graph.Item(items[i]).ID < in.Graph.Item(items[j]).ID
		})
	}

	w.printf("ITEM SUMMARY\n")
	for _, idx := range items {
		if in.Result.Trades(idx) {
			receivesFrom := in.Result.Receive[idx]
			sendsTo := in.Result.Send[idx]
			w.printf("%sreceives %s  and sends to %s\n",
				padLeftColumn(describe(in.Graph, idx)), describe(in.Graph, receivesFrom), describe(in.Graph, sendsTo))

			continue
		}
		if in.Options.Bool(option.HideNontrades) {
			continue
		}
		w.printf("%sdoes not trade\n", padLeftColumn(describe(in.Graph, idx)))
	}
	w.printf("\n")
}

func writeTradeStatistics(w *errWriter, in Input) {
	items := nonDummyItems(in.Graph)
	traded := 0
	users := make(map[string]bool)
	for _, idx := range items {
		if in.Result.Trades(idx) {
			traded++
			users[in.Graph.Item(idx).Owner] = true
		}
	}

	isDummy := func(i int) bool { return in.Graph.Item(i).IsDummy }
	cycles := cycle.Decode(in.Result, isDummy)
	sizes := make([]int, len(cycles))
	for i, c := range cycles {
		sizes[i] = len(c)
	}

	w.printf("TRADE STATISTICS\n")
	w.printf("  Num trades = %d of %d items (%s%%)\n", traded, len(items), formatPercent(traded, len(items)))
	w.printf("  Total cost: %d\n", in.TotalCost)
	w.printf("  Trade groups: %d\n", len(cycles))
	w.printf("  Cycle sizes: %v\n", sizes)
	w.printf("  Distinct trading users: %d\n", len(users))
}

// nonDummyItems returns every non-dummy item index in g, in declaration
// order (callers re-sort as their section requires).
func nonDummyItems(g *tradegraph.Graph) []int {
	out := make([]int, 0, g.NodeCount())
	for i := 0; i < g.NodeCount(); i++ {
		if !g.Item(i).IsDummy {
			out = append(out, i)
		}
	}

	return out
}
