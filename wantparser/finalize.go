package wantparser

import "sort"

// Finalize resolves every pending arc against the final item registry and
// returns the accumulated Duplicates/Missing bookkeeping. It must run after
// every line has been processed: a target that looks unknown mid-file may
// be registered by a want-list declared later on (spec §4.3, §4.4).
//
// The first call consumes the pending arcs, so calling Finalize again
// records nothing new and returns the same bookkeeping; Run calls it
// automatically.
func (p *Parser) Finalize() Result {
	for _, pa := range p.pending {
		targetIdx, ok := p.graph.Lookup(pa.target)
		if !ok {
			p.missing[pa.target]++

			continue
		}
		p.graph.AddArc(pa.source, targetIdx, int(pa.rank))
	}
	p.pending = nil

	var missing []Missing
	for target, count := range p.missing {
		missing = append(missing, Missing{Target: target, Count: count})
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i].Target < missing[j].Target })

	return Result{
		Duplicates: p.duplicates,
		Missing:    missing,
	}
}
