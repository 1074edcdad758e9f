package tradegraph

import (
	"fmt"
	"io"
)

// WriteCanonical emits the canonical graph export of spec §6: an "@nodes"
// section (one row per item with a want-list) followed by an "@arcs" section
// (one row per TradableArcs entry), tab-separated, string fields quoted.
//
// Running WriteCanonical twice on the same Graph produces byte-identical
// output (spec §8, invariant 7): the sections are built from
// TradableItemIndices and TradableArcs, neither of which depends on map
// iteration order.
func (g *Graph) WriteCanonical(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "@nodes"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "label\titem\tofficial_name\tusername\tdummy\tcopy_index\tcopy_total"); err != nil {
		return err
	}

	dummyFlag := func(b bool) int {
		if b {
			return 1
		}

		return 0
	}

	for _, idx := range g.TradableItemIndices() {
		it := g.items[idx]
		if _, err := fmt.Fprintf(w, "%q\t%q\t%q\t%q\t%d\t%d\t%d\n",
			it.ID, it.ID, it.OfficialName, it.Owner, dummyFlag(it.IsDummy), it.CopyIndex, it.CopyTotal); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "@arcs"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\t\trank"); err != nil {
		return err
	}

	for _, a := range g.TradableArcs() {
		src, dst := g.items[a.Source], g.items[a.Target]
		if _, err := fmt.Fprintf(w, "%q\t%q\t%d\n", src.ID, dst.ID, a.Rank); err != nil {
			return err
		}
	}

	return nil
}
