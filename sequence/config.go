package sequence

// Config carries the full set of recognized sequence options. It is
// populated once by the caller and validated before any allocation work.
type Config struct {
	// InstrumentMethod applies to every injection unless
	// VialInstrumentMethod overrides it for vial-sourced entries.
	InstrumentMethod     string
	VialInstrumentMethod string

	// InjectionVolume is in microliters.
	InjectionVolume float64

	// PlateTrayNumber is how many of the TrayLabels are reserved for
	// 96-well plates; the remaining labels hold vial trays. TrayLabels
	// are in autosampler order and must cover both uses.
	PlateTrayNumber int
	TrayLabels      []string

	// StandardReplicateNumber is how many times the standard series runs
	// across the sequence, at least at the very start and the very end.
	StandardReplicateNumber int

	// TechnicalReplicates is how many adjacent injections each normal
	// sample receives.
	TechnicalReplicates int
}

// PlateTrays returns the tray labels reserved for plates.
func (c Config) PlateTrays() []string {
	return c.TrayLabels[:c.PlateTrayNumber]
}

// VialTrays returns the tray labels left over for vials.
func (c Config) VialTrays() []string {
	return c.TrayLabels[c.PlateTrayNumber:]
}

// Validate checks every option eagerly and returns a ConfigurationError
// naming the first offending field.
func (c Config) Validate() error {
	if c.InstrumentMethod == "" {
		return &ConfigurationError{Field: "instrument_method", Reason: "must not be empty"}
	}
	if c.InjectionVolume <= 0 {
		return &ConfigurationError{Field: "injection_volume", Reason: "must be positive"}
	}
	if c.PlateTrayNumber < 1 {
		return &ConfigurationError{Field: "plate_tray_number", Reason: "must be positive"}
	}
	if len(c.TrayLabels) < c.PlateTrayNumber+1 {
		return &ConfigurationError{
			Field:  "tray_labels",
			Reason: "must include at least one tray beyond the plate trays, for vials",
		}
	}
	seen := make(map[string]bool, len(c.TrayLabels))
	for _, label := range c.TrayLabels {
		if label == "" {
			return &ConfigurationError{Field: "tray_labels", Reason: "labels must not be empty"}
		}
		if seen[label] {
			return &ConfigurationError{Field: "tray_labels", Reason: "labels must be unique"}
		}
		seen[label] = true
	}
	if c.StandardReplicateNumber < 2 {
		return &ConfigurationError{
			Field:  "standard_replicate_number",
			Reason: "standards must run at least at the start and the end",
		}
	}
	if c.TechnicalReplicates < 1 {
		return &ConfigurationError{Field: "technical_replicates_samples", Reason: "must be positive"}
	}
	return nil
}
