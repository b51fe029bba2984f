package manifest

import (
	"fmt"

	"github.com/MinkSieders/Chromeleon-Sequence-Writer/sample"
)

// Kind distinguishes the two physical carrier types an autosampler tray can
// hold.
type Kind int

const (
	// Plate is a 96-well plate, loaded from one spreadsheet in the plates
	// folder.
	Plate Kind = iota
	// Vials is the 1.5 mL vial manifest, a single ordered list of labels.
	Vials
)

func (k Kind) String() string {
	switch k {
	case Plate:
		return "plate"
	case Vials:
		return "vials"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Plate geometry. Wells are addressed row letter first (A1 through H12).
const (
	PlateRows     = "ABCDEFGH"
	PlateColumns  = 12
	PlateCapacity = len(PlateRows) * PlateColumns
)

// Source is one physical sample carrier: a 96-well plate or the vial
// manifest. Records are bound to fixed origin positions within the carrier
// (a well coordinate for plates, a 1-based row ordinal for vials) and are
// never mutated after loading. Omitted records have already been dropped,
// but for vials their ordinal gap remains, so an OMIT row keeps its slot in
// the tray empty.
type Source struct {
	Name    string
	Kind    Kind
	Records []sample.Record
}
