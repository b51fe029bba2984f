package sequence

import (
	"errors"
	"testing"
)

func validConfig() Config {
	return Config{
		InstrumentMethod:        "MS_Catecholamine_Iso_col25",
		InjectionVolume:         25,
		PlateTrayNumber:         2,
		TrayLabels:              []string{"R", "G", "B"},
		StandardReplicateNumber: 2,
		TechnicalReplicates:     1,
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*Config)
	}{
		{"instrument_method", func(c *Config) { c.InstrumentMethod = "" }},
		{"injection_volume", func(c *Config) { c.InjectionVolume = 0 }},
		{"injection_volume", func(c *Config) { c.InjectionVolume = -1 }},
		{"plate_tray_number", func(c *Config) { c.PlateTrayNumber = 0 }},
		{"tray_labels", func(c *Config) { c.TrayLabels = []string{"R", "G"} }},
		{"tray_labels", func(c *Config) { c.TrayLabels = []string{"R", "R", "B"} }},
		{"tray_labels", func(c *Config) { c.TrayLabels = []string{"R", "", "B"} }},
		{"standard_replicate_number", func(c *Config) { c.StandardReplicateNumber = 1 }},
		{"technical_replicates_samples", func(c *Config) { c.TechnicalReplicates = 0 }},
		{"technical_replicates_samples", func(c *Config) { c.TechnicalReplicates = -2 }},
	}

	for _, test := range tests {
		cfg := validConfig()
		test.mutate(&cfg)

		err := cfg.Validate()
		var cerr *ConfigurationError
		if !errors.As(err, &cerr) {
			t.Fatalf("%s: expected ConfigurationError, got %v", test.field, err)
		}
		if cerr.Field != test.field {
			t.Errorf("got field %s, want %s", cerr.Field, test.field)
		}
	}
}

func TestTraySplit(t *testing.T) {
	cfg := validConfig()

	plates := cfg.PlateTrays()
	if len(plates) != 2 || plates[0] != "R" || plates[1] != "G" {
		t.Errorf("plate trays: %v", plates)
	}

	vials := cfg.VialTrays()
	if len(vials) != 1 || vials[0] != "B" {
		t.Errorf("vial trays: %v", vials)
	}
}
