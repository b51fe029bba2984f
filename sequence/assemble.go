package sequence

import (
	"github.com/MinkSieders/Chromeleon-Sequence-Writer/manifest"
)

// Assemble turns a loaded manifest and a configuration into the final
// injection ordering plus its changeover schedule. The body runs generation
// by generation (plates in encounter order within each, wells in source
// order, technical replicates adjacent), then the resident vials; standard
// blocks are spliced in at the interleaver's offsets; changeover indices
// are re-expressed against the fully spliced ordering. Given identical
// inputs the output is byte-for-byte identical. Any error from validation,
// allocation or interleaving aborts the whole run; no partial sequence is
// ever returned.
func Assemble(sources []manifest.Source, cfg Config) (*Run, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	alloc, err := Allocate(sources, cfg)
	if err != nil {
		return nil, err
	}

	var body []Entry
	genStart := make([]int, len(alloc.Generations))
	for g, plates := range alloc.Generations {
		genStart[g] = len(body)
		for _, pa := range plates {
			body = appendExpanded(body, pa.Flow, cfg)
		}
	}
	body = appendExpanded(body, alloc.VialFlow, cfg)

	// Without any standards there is nothing to splice; the interleaver's
	// feasibility rules only apply when blocks have content.
	var offsets []int
	if len(alloc.Standards) > 0 {
		offsets, err = standardOffsets(len(body), cfg.StandardReplicateNumber)
		if err != nil {
			return nil, err
		}
	}

	blockLen := len(alloc.Standards)
	entries := make([]Entry, 0, len(body)+blockLen*len(offsets))
	prev := 0
	for block, off := range offsets {
		entries = append(entries, body[prev:off]...)
		for _, b := range alloc.Standards {
			entries = append(entries, newEntry(b, block+1, cfg))
		}
		prev = off
	}
	entries = append(entries, body[prev:]...)

	for i := range entries {
		entries[i].Ordinal = i + 1
	}

	run := &Run{
		Entries:  entries,
		Trays:    alloc.Trays,
		Bindings: collectBindings(alloc),
	}

	// A block spliced at or before a generation's first body entry runs
	// before the swap (standards are vial-resident either way), shifting
	// the changeover index by one block length each.
	for _, co := range alloc.Changeovers {
		start := genStart[co.Generation]
		blocksBefore := 0
		for _, off := range offsets {
			if off <= start {
				blocksBefore++
			}
		}
		co.Index = start + blocksBefore*blockLen
		run.Changeovers = append(run.Changeovers, co)
	}

	return run, nil
}

func appendExpanded(body []Entry, flow []Binding, cfg Config) []Entry {
	for _, b := range flow {
		for rep := 1; rep <= cfg.TechnicalReplicates; rep++ {
			body = append(body, newEntry(b, rep, cfg))
		}
	}
	return body
}

// newEntry resolves one injection. For standards, rep counts the block
// repetition across the run; for normal samples it counts the technical
// replicate within the adjacent group.
func newEntry(b Binding, rep int, cfg Config) Entry {
	method := cfg.InstrumentMethod
	if b.Kind == manifest.Vials && cfg.VialInstrumentMethod != "" {
		method = cfg.VialInstrumentMethod
	}

	return Entry{
		Name:     b.Record.ResolvedName(rep),
		Tray:     b.Tray,
		Well:     b.Well,
		Position: positionCode(b.Tray, b.Well),
		Method:   method,
		Volume:   cfg.InjectionVolume,
		Source:   b.Record.Source,
		Kind:     b.Kind,
		Role:     b.Record.Role,
	}
}

// positionCode is the autosampler position string: the first rune of the
// tray label followed by the well coordinate, e.g. RA1 or GB12.
func positionCode(tray, well string) string {
	return string([]rune(tray)[0]) + well
}

func collectBindings(alloc *Allocation) []Binding {
	var out []Binding
	for _, plates := range alloc.Generations {
		for _, pa := range plates {
			out = append(out, pa.Flow...)
		}
	}
	out = append(out, alloc.VialFlow...)
	out = append(out, alloc.Standards...)
	return out
}
