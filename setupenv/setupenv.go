// Package setupenv scaffolds a template manifest folder an analyst can fill
// in: a vials.xlsx with example standard, sample and omitted rows, plus a
// plates folder with three fully populated 96-well plate layouts.
package setupenv

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/carbocation/pfx"
	"github.com/xuri/excelize/v2"

	"github.com/MinkSieders/Chromeleon-Sequence-Writer/manifest"
)

const defaultSheet = "Sheet1"

// Create builds the template environment at dir. It refuses to touch an
// existing folder.
func Create(dir string) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("refusing to overwrite existing folder %s", dir)
	} else if !os.IsNotExist(err) {
		return pfx.Err(err)
	}

	if err := os.MkdirAll(filepath.Join(dir, "plates"), 0o755); err != nil {
		return pfx.Err(err)
	}

	if err := writeVials(filepath.Join(dir, manifest.VialsBase+".xlsx")); err != nil {
		return err
	}

	for _, plate := range []string{"A", "B", "C"} {
		path := filepath.Join(dir, "plates", fmt.Sprintf("PLATE_EXAMPLE_%s.xlsx", plate))
		if err := writePlate(path, plate); err != nil {
			return err
		}
	}

	return nil
}

func writeVials(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	row := 0
	for _, prefix := range []string{"STD", "VIAL", "OMIT"} {
		for i := 1; i <= 5; i++ {
			row++
			cell := fmt.Sprintf("A%d", row)
			label := fmt.Sprintf("%s_EXAMPLE_%d.R1.T0", prefix, i)
			if err := f.SetCellValue(defaultSheet, cell, label); err != nil {
				return pfx.Err(err)
			}
		}
	}

	return pfx.Err(f.SaveAs(path))
}

func writePlate(path, plate string) error {
	f := excelize.NewFile()
	defer f.Close()

	for col := 1; col <= manifest.PlateColumns; col++ {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return pfx.Err(err)
		}
		if err := f.SetCellValue(defaultSheet, cell, col); err != nil {
			return pfx.Err(err)
		}
	}

	well := 0
	for rowIdx, row := range manifest.PlateRows {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx+2)
		if err != nil {
			return pfx.Err(err)
		}
		if err := f.SetCellValue(defaultSheet, cell, string(row)); err != nil {
			return pfx.Err(err)
		}

		for col := 1; col <= manifest.PlateColumns; col++ {
			well++
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return pfx.Err(err)
			}
			label := fmt.Sprintf("EXAMPLE_%s_Well_%d.R1.T0", plate, well)
			if err := f.SetCellValue(defaultSheet, cell, label); err != nil {
				return pfx.Err(err)
			}
		}
	}

	return pfx.Err(f.SaveAs(path))
}
