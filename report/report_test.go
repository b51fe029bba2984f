package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MinkSieders/Chromeleon-Sequence-Writer/manifest"
	"github.com/MinkSieders/Chromeleon-Sequence-Writer/sample"
	"github.com/MinkSieders/Chromeleon-Sequence-Writer/sequence"
)

func TestGenerate(t *testing.T) {
	run := &sequence.Run{
		Trays: []sequence.TraySlot{
			{Source: "P1", Kind: manifest.Plate, Tray: "R", Generation: 0},
			{Source: "vials", Kind: manifest.Vials, Tray: "B", Generation: 0},
		},
		Bindings: []sequence.Binding{
			{Record: sample.Record{Name: "S001", Source: "P1", Position: "A1"}, Kind: manifest.Plate, Tray: "R", Well: "A1"},
			{Record: sample.Record{Name: "V001", Source: "vials", Position: "1"}, Kind: manifest.Vials, Tray: "B", Well: "A1"},
			{Record: sample.Record{Name: "STD_A", Role: sample.Standard, Source: "vials", Position: "2"}, Kind: manifest.Vials, Tray: "B", Well: "A2"},
		},
		Changeovers: []sequence.Changeover{
			{Index: 8, Generation: 1, Swaps: []sequence.TraySwap{{Tray: "R", Outgoing: "P1", Incoming: "P2"}}},
		},
	}

	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "AS_loading_protocol.pdf")

	if err := Generate(run, pdfPath, dir); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"plate_P1.png", "vial_tray_B.png", "AS_loading_protocol.pdf"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestTrayColorFallback(t *testing.T) {
	if trayColor("R") == defaultTrayColor {
		t.Error("R should have its own color")
	}
	if trayColor("Q") != defaultTrayColor {
		t.Error("unknown trays should fall back to grey")
	}
}
