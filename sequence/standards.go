package sequence

// standardOffsets computes where standard blocks are spliced into a body of
// bodyLen expanded entries: one block at offset 0, one at bodyLen, and
// blocks-2 interior blocks at as-even-as-possible intervals. Interior block
// j (1-based) lands before body offset j*bodyLen/(blocks-1), bumped forward
// minimally so offsets stay strictly increasing and strictly interior.
func standardOffsets(bodyLen, blocks int) ([]int, error) {
	if blocks < 2 {
		return nil, &ConfigurationError{
			Field:  "standard_replicate_number",
			Reason: "standards must run at least at the start and the end",
		}
	}

	interior := blocks - 2
	if interior > 0 && interior > bodyLen-1 {
		return nil, &ConfigurationError{
			Field:  "standard_replicate_number",
			Reason: "too many standard runs to place distinctly between the sequence start and end",
		}
	}

	offsets := make([]int, 0, blocks)
	offsets = append(offsets, 0)

	prev := 0
	for j := 1; j <= interior; j++ {
		off := j * bodyLen / (blocks - 1)
		if off <= prev {
			off = prev + 1
		}
		offsets = append(offsets, off)
		prev = off
	}

	return append(offsets, bodyLen), nil
}
