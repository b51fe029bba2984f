package sample

import (
	"fmt"
	"strconv"
	"strings"
)

// Delimiter separates a sample name from its decorations in raw labels.
const Delimiter = "."

const (
	standardPrefix = "STD"
	omittedPrefix  = "OMIT"
)

// ParseError reports a manifest label that could not be turned into a
// Record. The only malformed shape is an empty name component; unrecognized
// decorations are treated as noise, not errors.
type ParseError struct {
	Label    string
	Source   string
	Position string
}

func (e *ParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("sample label %q has an empty name", e.Label)
	}
	return fmt.Sprintf("sample label %q at %s %s has an empty name", e.Label, e.Source, e.Position)
}

// Parse splits a raw label on the delimiter into a Record. Component 0 is
// the name; later components set the replicate (R<digits>) or timepoint
// (T<digits>) when they match those markers and are otherwise ignored. The
// name prefixes STD and OMIT (case sensitive) set the role.
func Parse(raw string) (Record, error) {
	return ParseAt(raw, "", "")
}

// ParseAt is Parse with provenance: the record remembers which manifest and
// coordinate it came from, and parse failures report them.
func ParseAt(raw, source, position string) (Record, error) {
	parts := strings.Split(raw, Delimiter)

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return Record{}, &ParseError{Label: raw, Source: source, Position: position}
	}

	rec := Record{
		Name:      name,
		Replicate: 1,
		Source:    source,
		Position:  position,
	}

	switch {
	case strings.HasPrefix(name, standardPrefix):
		rec.Role = Standard
	case strings.HasPrefix(name, omittedPrefix):
		rec.Role = Omitted
	}

	for _, part := range parts[1:] {
		if n, ok := markerNumber(part, "R"); ok && n > 0 {
			rec.Replicate = n
			rec.HasReplicate = true
			continue
		}
		if n, ok := markerNumber(part, "T"); ok {
			rec.Timepoint = n
			rec.HasTimepoint = true
		}
	}

	return rec, nil
}

func markerNumber(part, marker string) (int, bool) {
	digits, found := strings.CutPrefix(part, marker)
	if !found || digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
