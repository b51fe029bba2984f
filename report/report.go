// Package report renders the physical loading protocol for a run: one
// layout image per occupied tray and a PDF the operator follows at the
// autosampler.
package report

import (
	"fmt"
	"path/filepath"

	"github.com/carbocation/pfx"
	"github.com/go-pdf/fpdf"

	"github.com/MinkSieders/Chromeleon-Sequence-Writer/manifest"
	"github.com/MinkSieders/Chromeleon-Sequence-Writer/sequence"
)

type trayImage struct {
	title string
	path  string
}

// Generate renders the tray layout PNGs into imgDir and bundles them, the
// plate loading protocol and the changeover schedule into a PDF at pdfPath.
func Generate(run *sequence.Run, pdfPath, imgDir string) error {
	images, err := renderTrayImages(run, imgDir)
	if err != nil {
		return err
	}
	return writePDF(run, pdfPath, images)
}

// renderTrayImages draws one grid per tray slot, in the allocator's order
// so output is reproducible: plates in encounter order, then vial trays.
func renderTrayImages(run *sequence.Run, imgDir string) ([]trayImage, error) {
	var images []trayImage

	for _, slot := range run.Trays {
		wells := make(map[string]string)
		for _, b := range run.Bindings {
			switch slot.Kind {
			case manifest.Plate:
				if b.Kind == manifest.Plate && b.Record.Source == slot.Source {
					wells[b.Well] = b.Record.Name
				}
			case manifest.Vials:
				if b.Kind == manifest.Vials && b.Tray == slot.Tray {
					wells[b.Well] = b.Record.Name
				}
			}
		}

		var img trayImage
		var rows string
		var columns int
		switch slot.Kind {
		case manifest.Plate:
			img.title = fmt.Sprintf("Plate %s in tray %s, load %d", slot.Source, slot.Tray, slot.Generation+1)
			img.path = filepath.Join(imgDir, fmt.Sprintf("plate_%s.png", slot.Source))
			rows, columns = manifest.PlateRows, manifest.PlateColumns
		case manifest.Vials:
			img.title = fmt.Sprintf("Vial tray %s", slot.Tray)
			img.path = filepath.Join(imgDir, fmt.Sprintf("vial_tray_%s.png", slot.Tray))
			rows, columns = "ABCDE", 8
		}

		if err := drawGrid(img.path, img.title, slot.Tray, rows, columns, wells); err != nil {
			return nil, err
		}
		images = append(images, img)
	}

	return images, nil
}

func writePDF(run *sequence.Run, pdfPath string, images []trayImage) error {
	pdf := fpdf.New("P", "mm", "A4", "")

	pdf.AddPage()
	pdf.Ln(40)
	pdf.SetFont("Arial", "B", 16)
	pdf.MultiCell(0, 10, "Procedure for loading HPLC samples in the autosampler", "", "C", false)
	pdf.Ln(5)
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 10, "DO NOT FORGET TO SET THE TRAY TYPE IN THE AUTOSAMPLER!", "", "C", false)

	for _, img := range images {
		pdf.AddPage()
		pdf.Ln(10)
		pdf.SetFont("Arial", "B", 16)
		pdf.CellFormat(0, 10, img.title, "", 1, "C", false, 0, "")
		pdf.Image(img.path, 10, 40, 190, 0, false, "", 0, "")
	}

	pdf.AddPage()
	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "96-Well Plate Loading Protocol", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	for _, slot := range run.Trays {
		if slot.Kind != manifest.Plate {
			continue
		}
		pdf.SetFont("Arial", "", 12)
		pdf.CellFormat(90, 8, fmt.Sprintf("96-well plate %s should be loaded in:", slot.Source), "", 0, "", false, 0, "")

		c := trayColor(slot.Tray)
		pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, fmt.Sprintf("Tray %s (load %d)", slot.Tray, slot.Generation+1), "", 1, "", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	if len(run.Changeovers) > 0 {
		pdf.Ln(8)
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, "Mid-run tray changeovers", "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		for _, co := range run.Changeovers {
			for _, swap := range co.Swaps {
				line := fmt.Sprintf("Before injection %d, tray %s: take out plate %s, load plate %s",
					co.Index+1, swap.Tray, swap.Outgoing, swap.Incoming)
				pdf.CellFormat(0, 8, line, "", 1, "", false, 0, "")
			}
		}
	}

	if err := pdf.OutputFileAndClose(pdfPath); err != nil {
		return pfx.Err(err)
	}
	return nil
}
