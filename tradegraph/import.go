package tradegraph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedCanonicalInput indicates a canonical graph export (spec §6)
// that ReadCanonical could not parse: a missing section header, a row with
// the wrong field count, or an unparsable quoted field or rank.
var ErrMalformedCanonicalInput = errors.New("tradegraph: malformed canonical graph input")

// ReadCanonical parses the canonical graph export WriteCanonical produces
// back into a Graph, reconstructing the "pre-built graph file" input mode
// the CLI surface (spec §6) accepts as an alternative to a raw want-file.
// Every node row is, by construction of WriteCanonical, a tradable item:
// ReadCanonical marks each reconstructed item HasWantlist so the returned
// Graph's TradableArcs/TradableItemIndices behave exactly as they would
// had the original want-file been parsed directly.
func ReadCanonical(r io.Reader) (*Graph, error) {
	g := NewGraph()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "@nodes" {
		return nil, fmt.Errorf("%w: expected @nodes header", ErrMalformedCanonicalInput)
	}
	if !scanner.Scan() { // column header row, discarded
		return nil, fmt.Errorf("%w: missing @nodes column header", ErrMalformedCanonicalInput)
	}

	for scanner.Scan() {
		line := scanner.Text()
		if line == "@arcs" {
			break
		}
		if err := readNodeRow(g, line); err != nil {
			return nil, err
		}
	}

	if !scanner.Scan() { // column header row, discarded
		return nil, fmt.Errorf("%w: missing @arcs column header", ErrMalformedCanonicalInput)
	}

	for scanner.Scan() {
		if err := readArcRow(g, scanner.Text()); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCanonicalInput, err)
	}

	return g, nil
}

func readNodeRow(g *Graph, line string) error {
	fields := strings.Split(line, "\t")
	if len(fields) != 7 {
		return fmt.Errorf("%w: node row %q: want 7 tab-separated fields, got %d", ErrMalformedCanonicalInput, line, len(fields))
	}

	id, err := strconv.Unquote(fields[0])
	if err != nil {
		return fmt.Errorf("%w: node label %q: %v", ErrMalformedCanonicalInput, fields[0], err)
	}
	officialName, err := strconv.Unquote(fields[2])
	if err != nil {
		return fmt.Errorf("%w: node official_name %q: %v", ErrMalformedCanonicalInput, fields[2], err)
	}
	owner, err := strconv.Unquote(fields[3])
	if err != nil {
		return fmt.Errorf("%w: node username %q: %v", ErrMalformedCanonicalInput, fields[3], err)
	}
	copyIndex, err := strconv.Atoi(fields[5])
	if err != nil {
		return fmt.Errorf("%w: node copy_index %q: %v", ErrMalformedCanonicalInput, fields[5], err)
	}
	copyTotal, err := strconv.Atoi(fields[6])
	if err != nil {
		return fmt.Errorf("%w: node copy_total %q: %v", ErrMalformedCanonicalInput, fields[6], err)
	}

	idx, err := g.AddItem(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedCanonicalInput, err)
	}
	it := g.Item(idx)
	it.OfficialName = officialName
	it.Owner = owner
	it.IsDummy = fields[4] == "1"
	it.HasWantlist = true
	it.CopyIndex = copyIndex
	it.CopyTotal = copyTotal

	return nil
}

func readArcRow(g *Graph, line string) error {
	fields := strings.Split(line, "\t")
	if len(fields) != 3 {
		return fmt.Errorf("%w: arc row %q: want 3 tab-separated fields, got %d", ErrMalformedCanonicalInput, line, len(fields))
	}

	src, err := strconv.Unquote(fields[0])
	if err != nil {
		return fmt.Errorf("%w: arc source %q: %v", ErrMalformedCanonicalInput, fields[0], err)
	}
	dst, err := strconv.Unquote(fields[1])
	if err != nil {
		return fmt.Errorf("%w: arc target %q: %v", ErrMalformedCanonicalInput, fields[1], err)
	}
	rank, err := strconv.Atoi(fields[2])
	if err != nil {
		return fmt.Errorf("%w: arc rank %q: %v", ErrMalformedCanonicalInput, fields[2], err)
	}

	srcIdx, ok := g.Lookup(src)
	if !ok {
		return fmt.Errorf("%w: arc source %q never declared as a node", ErrMalformedCanonicalInput, src)
	}
	dstIdx, ok := g.Lookup(dst)
	if !ok {
		return fmt.Errorf("%w: arc target %q never declared as a node", ErrMalformedCanonicalInput, dst)
	}
	g.AddArc(srcIdx, dstIdx, rank)

	return nil
}
