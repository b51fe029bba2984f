package manifest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/MinkSieders/Chromeleon-Sequence-Writer/sample"
)

// VialsBase is the required base name of the vial manifest file inside a
// manifest folder; the extension may be .xlsx, .xls or .csv.
const VialsBase = "vials"

const platesDir = "plates"

var manifestExtensions = []string{".xlsx", ".xls", ".csv"}

// LoadFolder reads a manifest folder: every spreadsheet under
// <folder>/plates becomes a plate Source (in sorted filename order, so runs
// are reproducible), and <folder>/vials.{xlsx,xls,csv} becomes the vial
// Source. Either part may be absent, but a folder that yields no sources at
// all is an error.
func LoadFolder(folder string) ([]Source, error) {
	var sources []Source

	entries, err := os.ReadDir(filepath.Join(folder, platesDir))
	if err != nil && !os.IsNotExist(err) {
		return nil, pfx.Err(err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !hasManifestExtension(entry.Name()) {
			continue
		}
		src, err := LoadPlate(filepath.Join(folder, platesDir, entry.Name()))
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}

	for _, ext := range manifestExtensions {
		path := filepath.Join(folder, VialsBase+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		src, err := LoadVials(path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
		break
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("manifest folder %s contains no plate or vial manifests", folder)
	}

	return sources, nil
}

// LoadPlate reads one 96-well plate spreadsheet. The first row holds column
// numbers, the first column holds row letters, and every non-empty interior
// cell is a raw sample label at that well. Omitted records are dropped here;
// a plate well's coordinate is fixed regardless.
func LoadPlate(path string) (Source, error) {
	grid, err := readGrid(path)
	if err != nil {
		return Source{}, err
	}
	if len(grid) == 0 {
		return Source{}, fmt.Errorf("plate manifest %s is empty", path)
	}

	src := Source{Name: baseName(path), Kind: Plate}

	header := grid[0]
	for _, row := range grid[1:] {
		if len(row) == 0 {
			continue
		}
		rowLabel := strings.TrimSpace(row[0])
		if rowLabel == "" {
			continue
		}
		for col := 1; col < len(row); col++ {
			label := strings.TrimSpace(row[col])
			if label == "" {
				continue
			}
			well := fmt.Sprintf("%s%d", rowLabel, columnNumber(header, col))
			rec, err := sample.ParseAt(label, src.Name, well)
			if err != nil {
				return Source{}, err
			}
			if rec.Role == sample.Omitted {
				continue
			}
			src.Records = append(src.Records, rec)
		}
	}

	return src, nil
}

// LoadVials reads the vial manifest: one raw label per row, first column.
// Each non-empty row consumes one vial ordinal, including OMIT rows, so an
// omitted vial leaves its physical slot empty rather than shifting its
// neighbors.
func LoadVials(path string) (Source, error) {
	grid, err := readGrid(path)
	if err != nil {
		return Source{}, err
	}

	src := Source{Name: baseName(path), Kind: Vials}

	ordinal := 0
	for _, row := range grid {
		if len(row) == 0 {
			continue
		}
		label := strings.TrimSpace(row[0])
		if label == "" {
			continue
		}
		ordinal++
		rec, err := sample.ParseAt(label, src.Name, strconv.Itoa(ordinal))
		if err != nil {
			return Source{}, err
		}
		if rec.Role == sample.Omitted {
			continue
		}
		src.Records = append(src.Records, rec)
	}

	return src, nil
}

// readGrid materializes a spreadsheet's first sheet as rows of cell strings.
func readGrid(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readXLSX(path)
	case ".xls":
		return readXLS(path)
	case ".csv":
		return readCSV(path)
	}
	return nil, fmt.Errorf("manifest %s: unsupported spreadsheet format", path)
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("manifest %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, pfx.Err(err)
	}
	return rows, nil
}

func readXLS(path string) ([][]string, error) {
	book, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, pfx.Err(err)
	}

	sheet := book.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("manifest %s has no sheets", path)
	}

	var rows [][]string
	for rowID := 0; rowID <= int(sheet.MaxRow); rowID++ {
		row := sheet.Row(rowID)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, 0, row.LastCol()+1)
		for colID := 0; colID <= row.LastCol(); colID++ {
			cells = append(cells, row.Col(colID))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, pfx.Err(err)
	}
	return rows, nil
}

// columnNumber resolves the plate column for cell index col, preferring the
// number printed in the header row and falling back to the index itself.
func columnNumber(header []string, col int) int {
	if col < len(header) {
		if n, err := strconv.Atoi(strings.TrimSpace(header[col])); err == nil && n > 0 {
			return n
		}
	}
	return col
}

func hasManifestExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, known := range manifestExtensions {
		if ext == known {
			return true
		}
	}
	return false
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
