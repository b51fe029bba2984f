// Command chromeleon-sequence-writer turns a manifest folder of 96-well
// plate layouts and a vial list into a Chromeleon injection sequence file
// plus a PDF loading protocol for the autosampler.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/MinkSieders/Chromeleon-Sequence-Writer/manifest"
	"github.com/MinkSieders/Chromeleon-Sequence-Writer/report"
	"github.com/MinkSieders/Chromeleon-Sequence-Writer/seqfile"
	"github.com/MinkSieders/Chromeleon-Sequence-Writer/sequence"
	"github.com/MinkSieders/Chromeleon-Sequence-Writer/setupenv"
)

func main() {
	var (
		folder      string
		method      string
		vialMethod  string
		volume      float64
		output      string
		plateTrays  int
		stdReps     int
		trays       string
		techReps    int
		setupEnvDir string
		force       bool
	)

	flag.StringVar(&folder, "folder", "", "Manifest folder containing vials.xlsx and a plates subfolder")
	flag.StringVar(&method, "instrument-method", "MS_Catecholamine_Iso_col25", "Instrument method for all samples, or only for plate samples when -vial-instrument-method is set")
	flag.StringVar(&vialMethod, "vial-instrument-method", "", "Instrument method for vial samples, when it differs from -instrument-method")
	flag.Float64Var(&volume, "injection-volume", 25.0, "Injection volume in ul")
	flag.StringVar(&output, "output", "", "Output folder (default: <folder>_output)")
	flag.IntVar(&plateTrays, "plate-tray-number", 2, "Number of autosampler trays reserved for 96-well plates")
	flag.IntVar(&stdReps, "standard-replicate-number", 5, "Number of times the standard series is run (at least 2)")
	flag.StringVar(&trays, "trays", "R,G,B", "Comma-separated tray labels available in the autosampler")
	flag.IntVar(&techReps, "technical-replicates-samples", 2, "Number of injections per sample (technical replicates)")
	flag.StringVar(&setupEnvDir, "setup-env", "", "Create a template manifest folder at this path and exit")
	flag.BoolVar(&force, "force", false, "Reuse an existing output folder, overwriting its files")
	flag.Parse()

	if setupEnvDir != "" {
		if err := setupenv.Create(setupEnvDir); err != nil {
			log.Fatalln(err)
		}
		abs, err := filepath.Abs(setupEnvDir)
		if err != nil {
			abs = setupEnvDir
		}
		log.Printf("Created template manifest folder environment at %s", abs)
		return
	}

	if folder == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}
	folder = filepath.Clean(folder)

	cfg := sequence.Config{
		InstrumentMethod:        method,
		VialInstrumentMethod:    vialMethod,
		InjectionVolume:         volume,
		PlateTrayNumber:         plateTrays,
		TrayLabels:              splitTrays(trays),
		StandardReplicateNumber: stdReps,
		TechnicalReplicates:     techReps,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalln(err)
	}

	sources, err := manifest.LoadFolder(folder)
	if err != nil {
		log.Fatalln(err)
	}

	plates, vials := 0, 0
	for _, src := range sources {
		switch src.Kind {
		case manifest.Plate:
			plates++
		case manifest.Vials:
			vials++
		}
	}
	log.Printf("Loaded %d plate manifest(s) and %d vial manifest(s) from %s", plates, vials, folder)
	if plates == 0 {
		log.Println("No plates folder found; assuming no 96-well trays are needed")
	}
	if vials == 0 {
		log.Println("No vials manifest found; assuming no vial trays are needed")
	}

	run, err := sequence.Assemble(sources, cfg)
	if err != nil {
		log.Fatalln(err)
	}

	if output == "" {
		output = folder + "_output"
		log.Printf("No output folder specified, defaulting to %s", output)
	}
	if info, err := os.Stat(output); err == nil {
		if !info.IsDir() {
			log.Fatalf("%s exists and is not a folder", output)
		}
		if !force {
			log.Fatalf("Output folder %s already exists; pass -force to reuse it", output)
		}
		log.Printf("Continuing with existing output folder %s", output)
	}

	tmp := filepath.Join(output, "tmp")
	if err := os.MkdirAll(tmp, 0o755); err != nil {
		log.Fatalln(err)
	}

	seqPath := filepath.Join(output, "sample_sequence_"+filepath.Base(folder)+".txt")
	if err := seqfile.Write(seqPath, run.Entries); err != nil {
		log.Fatalln(err)
	}

	pdfPath := filepath.Join(output, "AS_loading_protocol.pdf")
	if err := report.Generate(run, pdfPath, tmp); err != nil {
		log.Fatalln(err)
	}

	log.Printf("Wrote %d injections and %d changeover(s); all outputs generated", len(run.Entries), len(run.Changeovers))
}

func splitTrays(trays string) []string {
	var labels []string
	for _, label := range strings.Split(trays, ",") {
		label = strings.TrimSpace(label)
		if label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}
