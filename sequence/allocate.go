package sequence

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MinkSieders/Chromeleon-Sequence-Writer/manifest"
	"github.com/MinkSieders/Chromeleon-Sequence-Writer/sample"
)

// Vial tray geometry: 5 rows (A at the top) by 8 columns.
const (
	vialTrayRows    = "ABCDE"
	vialTrayColumns = 8

	// VialTrayCapacity is the number of vial positions per tray.
	VialTrayCapacity = len(vialTrayRows) * vialTrayColumns
)

// PlateAssignment binds one plate to a tray for one generation, with its
// records in source order.
type PlateAssignment struct {
	Source string
	Tray   string
	Flow   []Binding
}

// Allocation is the full physical plan for a run: plates batched into
// generations, vials resident on their own trays, standards pulled out of
// the positional flow for interleaving. Allocation is a pure function of
// (sources, config); no state survives between invocations.
type Allocation struct {
	// Generations holds plate assignments per generation, in file
	// encounter order within each generation.
	Generations [][]PlateAssignment
	// VialFlow holds normal vial records in manifest order.
	VialFlow []Binding
	// Standards holds standard records in manifest order; they are
	// scheduled by the interleaver, never by their manifest position.
	Standards []Binding
	Trays     []TraySlot
	// Changeovers carry the tray swaps per generation boundary. Index is
	// -1 until the assembler re-expresses it against the final ordering.
	Changeovers []Changeover
}

// Allocate assigns every source a tray and every record a physical slot.
// Plates take the first PlateTrayNumber tray labels round-robin, batched
// into generations of PlateTrayNumber plates; vials fill the remaining
// trays, 40 positions each, resident for the whole run. Any manifest with
// no feasible capacity-respecting plan is rejected outright.
func Allocate(sources []manifest.Source, cfg Config) (*Allocation, error) {
	plateTrays := cfg.PlateTrays()
	vialTrays := cfg.VialTrays()
	vialCapacity := VialTrayCapacity * len(vialTrays)

	alloc := &Allocation{}

	plateIndex := 0
	for _, src := range sources {
		switch src.Kind {
		case manifest.Plate:
			gen := plateIndex / cfg.PlateTrayNumber
			tray := plateTrays[plateIndex%cfg.PlateTrayNumber]
			plateIndex++

			if len(src.Records) > manifest.PlateCapacity {
				return nil, &CapacityError{
					Source: src.Name,
					Reason: fmt.Sprintf("%d samples exceed the %d wells of a plate", len(src.Records), manifest.PlateCapacity),
				}
			}

			pa := PlateAssignment{Source: src.Name, Tray: tray}
			for _, rec := range src.Records {
				if rec.Role == sample.Standard {
					return nil, &CapacityError{
						Source: src.Name,
						Reason: fmt.Sprintf("standard %s must be loaded from vials so it stays resident across changeovers", rec.Name),
					}
				}
				if !validPlateWell(rec.Position) {
					return nil, &CapacityError{
						Source: src.Name,
						Reason: fmt.Sprintf("%s is not a plate well coordinate", rec.Position),
					}
				}
				pa.Flow = append(pa.Flow, Binding{Record: rec, Kind: manifest.Plate, Tray: tray, Well: rec.Position, Generation: gen})
			}

			if gen >= len(alloc.Generations) {
				alloc.Generations = append(alloc.Generations, nil)
			}
			alloc.Generations[gen] = append(alloc.Generations[gen], pa)
			alloc.Trays = append(alloc.Trays, TraySlot{Source: src.Name, Kind: manifest.Plate, Tray: tray, Generation: gen})

		case manifest.Vials:
			used := make(map[string]bool, len(vialTrays))
			for _, rec := range src.Records {
				n, err := strconv.Atoi(rec.Position)
				if err != nil || n < 1 {
					return nil, &CapacityError{
						Source: src.Name,
						Reason: fmt.Sprintf("%s is not a vial ordinal", rec.Position),
					}
				}
				if n > vialCapacity {
					return nil, &CapacityError{
						Source: src.Name,
						Reason: fmt.Sprintf("vial %d exceeds the %d positions available on %d vial tray(s)", n, vialCapacity, len(vialTrays)),
					}
				}

				idx := n - 1
				b := Binding{
					Record:     rec,
					Kind:       manifest.Vials,
					Tray:       vialTrays[idx/VialTrayCapacity],
					Well:       vialWell(idx % VialTrayCapacity),
					Generation: 0,
				}
				used[b.Tray] = true

				if rec.Role == sample.Standard {
					alloc.Standards = append(alloc.Standards, b)
				} else {
					alloc.VialFlow = append(alloc.VialFlow, b)
				}
			}
			for _, tray := range vialTrays {
				if used[tray] {
					alloc.Trays = append(alloc.Trays, TraySlot{Source: src.Name, Kind: manifest.Vials, Tray: tray, Generation: 0})
				}
			}
		}
	}

	for g := 1; g < len(alloc.Generations); g++ {
		co := Changeover{Index: -1, Generation: g}
		prev := alloc.Generations[g-1]
		for i, pa := range alloc.Generations[g] {
			co.Swaps = append(co.Swaps, TraySwap{Tray: pa.Tray, Outgoing: prev[i].Source, Incoming: pa.Source})
		}
		alloc.Changeovers = append(alloc.Changeovers, co)
	}

	return alloc, nil
}

func validPlateWell(pos string) bool {
	if len(pos) < 2 || !strings.ContainsRune(manifest.PlateRows, rune(pos[0])) {
		return false
	}
	n, err := strconv.Atoi(pos[1:])
	return err == nil && n >= 1 && n <= manifest.PlateColumns
}

// vialWell maps a 0-based position index within one vial tray to its
// coordinate, filling row A left to right, then B, and so on.
func vialWell(idx int) string {
	return fmt.Sprintf("%c%d", vialTrayRows[idx/vialTrayColumns], idx%vialTrayColumns+1)
}
