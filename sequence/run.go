package sequence

import (
	"github.com/MinkSieders/Chromeleon-Sequence-Writer/manifest"
	"github.com/MinkSieders/Chromeleon-Sequence-Writer/sample"
)

// Entry is one row of the final injection sequence.
type Entry struct {
	// Name is the resolved sample name, replicate and timepoint suffixes
	// reconstructed plus the technical replicate number.
	Name string
	// Tray is the tray label; Well the coordinate within it; Position the
	// combined autosampler code (first rune of the tray plus the well,
	// e.g. RA1, GB12).
	Tray     string
	Well     string
	Position string
	Method   string
	Volume   float64
	// Ordinal is the 1-based injection number in the final ordering.
	Ordinal int

	// Provenance for reporting.
	Source string
	Kind   manifest.Kind
	Role   sample.Role
}

// Binding ties one resident record to its physical slot for the run.
type Binding struct {
	Record     sample.Record
	Kind       manifest.Kind
	Tray       string
	Well       string
	Generation int
}

// TraySlot records which tray a source occupies and during which generation.
// Vial sources are resident for the whole run and always carry generation 0.
type TraySlot struct {
	Source     string
	Kind       manifest.Kind
	Tray       string
	Generation int
}

// TraySwap is one physical exchange at a changeover: the named tray gives up
// the outgoing source and receives the incoming one.
type TraySwap struct {
	Tray     string
	Outgoing string
	Incoming string
}

// Changeover marks a point in the assembled sequence where the operator must
// swap plates. Index is the position in the final, fully expanded entry list
// at which the incoming generation's first injection occurs.
type Changeover struct {
	Index      int
	Generation int
	Swaps      []TraySwap
}

// Run is the assembled output: the total injection ordering plus everything
// a report writer needs to describe the physical loading. It is immutable
// once Assemble returns it.
type Run struct {
	Entries     []Entry
	Changeovers []Changeover
	Trays       []TraySlot
	Bindings    []Binding
}
