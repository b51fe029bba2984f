package sample

import "fmt"

// Role classifies a sample by the marker prefix on its name. It is decided
// once, at parse time; nothing downstream re-derives it from the name string.
type Role int

const (
	// Normal samples flow through tray allocation in manifest order.
	Normal Role = iota
	// Standard samples are calibration runs, scheduled at fixed points
	// through the sequence rather than by their manifest position.
	Standard
	// Omitted samples reserve their physical slot but are never injected.
	Omitted
)

func (r Role) String() string {
	switch r {
	case Normal:
		return "normal"
	case Standard:
		return "standard"
	case Omitted:
		return "omitted"
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// Record is one parsed manifest entry. A Record is immutable once parsed.
//
// Replicate and Timepoint are identity metadata carried in the raw label
// (S001.R2.T12 is biological replicate 2 at timepoint 12); they say nothing
// about how many times the sample is injected.
type Record struct {
	Name         string
	Replicate    int
	HasReplicate bool
	Timepoint    int
	HasTimepoint bool
	Role         Role

	// Provenance: the manifest the record came from and its coordinate
	// within it (a well like B7 for plates, a 1-based row ordinal for
	// vials).
	Source   string
	Position string
}

// ResolvedName rebuilds the analyst-facing sample name: the base name, the
// replicate and timepoint decorations as they appeared in the manifest, and
// the technical replicate number of this particular injection.
func (r Record) ResolvedName(techRep int) string {
	name := r.Name
	if r.HasReplicate {
		name = fmt.Sprintf("%s.R%d", name, r.Replicate)
	}
	if r.HasTimepoint {
		name = fmt.Sprintf("%s.T%d", name, r.Timepoint)
	}
	return fmt.Sprintf("%s.TR%d", name, techRep)
}
