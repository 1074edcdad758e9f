package cycle

import "sort"

// Decode walks res.Send to recover the vertex-disjoint simple cycles
// formed by every trading, non-dummy item (spec §4.8 postcondition:
// "the set of chosen match-edges... is a vertex-disjoint union of simple
// directed cycles"; §GLOSSARY "Trade loop / cycle").
//
// Cycles are returned in a deterministic order: sorted by their lowest
// member item index, each starting at that lowest index, so that repeated
// runs over an unchanged Result produce byte-identical output (spec §5).
func Decode(res *Result, isDummy func(item int) bool) [][]int {
	visited := make([]bool, len(res.Send))
	var cycles [][]int

	for i := range res.Send {
		if visited[i] || isDummy(i) || !res.Trades(i) {
			continue
		}

		var cyc []int
		for cur := i; !visited[cur]; cur = res.Send[cur] {
			visited[cur] = true
			cyc = append(cyc, cur)
		}
		cycles = append(cycles, rotateToMin(cyc))
	}

	sort.Slice(cycles, func(a, b int) bool { return cycles[a][0] < cycles[b][0] })

	return cycles
}

// rotateToMin rotates cyc so it starts at its smallest element, giving a
// canonical starting point independent of which member Decode visited
// first.
func rotateToMin(cyc []int) []int {
	minAt := 0
	for i, v := range cyc {
		if v < cyc[minAt] {
			minAt = i
		}
	}

	return append(append([]int(nil), cyc[minAt:]...), cyc[:minAt]...)
}
