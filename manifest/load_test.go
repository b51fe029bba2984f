package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MinkSieders/Chromeleon-Sequence-Writer/sample"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadPlate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "PLATE_X.csv")
	writeFile(t, path, ",1,2,3\nA,S001.R1.T0,,S002\nB,OMIT_blank,S003.R2,\n")

	src, err := LoadPlate(path)
	if err != nil {
		t.Fatal(err)
	}
	if src.Name != "PLATE_X" || src.Kind != Plate {
		t.Errorf("Mismatch: %+v", src)
	}
	if len(src.Records) != 3 {
		t.Fatalf("got %d records, want 3", len(src.Records))
	}

	wantWells := []string{"A1", "A3", "B2"}
	wantNames := []string{"S001", "S002", "S003"}
	for i, rec := range src.Records {
		if rec.Position != wantWells[i] || rec.Name != wantNames[i] || rec.Source != "PLATE_X" {
			t.Errorf("record %d: %+v", i, rec)
		}
	}
}

func TestLoadVialsKeepsOmittedGap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vials.csv")
	writeFile(t, path, "STD_A\nV001\nOMIT_spacer\nV002.R1.T3\n")

	src, err := LoadVials(path)
	if err != nil {
		t.Fatal(err)
	}
	if src.Kind != Vials {
		t.Errorf("got kind %s", src.Kind)
	}
	if len(src.Records) != 3 {
		t.Fatalf("got %d records, want 3", len(src.Records))
	}

	// OMIT_spacer consumed ordinal 3, so V002 sits at ordinal 4.
	wantPositions := []string{"1", "2", "4"}
	for i, rec := range src.Records {
		if rec.Position != wantPositions[i] {
			t.Errorf("record %d: got position %s, want %s", i, rec.Position, wantPositions[i])
		}
	}
	if src.Records[0].Role != sample.Standard {
		t.Errorf("got role %s for STD_A", src.Records[0].Role)
	}
}

func TestLoadFolderOrdersPlatesByName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "plates", "b_plate.csv"), ",1\nA,S002\n")
	writeFile(t, filepath.Join(dir, "plates", "a_plate.csv"), ",1\nA,S001\n")
	writeFile(t, filepath.Join(dir, "vials.csv"), "V001\n")

	sources, err := LoadFolder(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(sources) != 3 {
		t.Fatalf("got %d sources, want 3", len(sources))
	}
	if sources[0].Name != "a_plate" || sources[1].Name != "b_plate" {
		t.Errorf("plate order: %s, %s", sources[0].Name, sources[1].Name)
	}
	if sources[2].Kind != Vials {
		t.Errorf("expected vials last, got %s", sources[2].Kind)
	}
}

func TestLoadFolderMissingPartsAreLegal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "vials.csv"), "V001\n")

	sources, err := LoadFolder(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(sources) != 1 || sources[0].Kind != Vials {
		t.Errorf("Mismatch: %+v", sources)
	}
}

func TestLoadFolderEmptyIsError(t *testing.T) {
	if _, err := LoadFolder(t.TempDir()); err == nil {
		t.Error("expected error for empty manifest folder")
	}
}

func TestLoadPlateParseErrorSurfaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	writeFile(t, path, ",1\nA,.R1\n")

	_, err := LoadPlate(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
}
