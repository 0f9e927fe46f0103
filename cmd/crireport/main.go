// Command crireport computes the CIE color rendering index of a light
// source. The source is a two-column wavelength,power CSV spectrum, or
// standard illuminant D65 when no file is given.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/photolux/colorimetry"
)

func main() {
	var (
		input   = flag.String("input", "", "CSV spectrum file with wavelength,power rows (default: illuminant D65)")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		colorimetry.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	light := colorimetry.D65()
	name := "D65"
	if *input != "" {
		var err error
		light, err = readSpectrum(*input)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", *input, err)
		}
		name = *input
	}

	cri, err := colorimetry.ComputeCRI(light)
	if err != nil {
		log.Fatalf("Failed to compute index: %v", err)
	}

	obs := colorimetry.CIE1931()
	cct, err := obs.CCT(obs.XYZ(light, nil))
	if err != nil {
		log.Fatalf("Failed to estimate color temperature: %v", err)
	}
	norm, err := light.SetIlluminance(obs, 100)
	if err != nil {
		log.Fatalf("Failed to normalize source: %v", err)
	}

	// Ra is conventionally the mean of the first eight samples.
	ra := 0.0
	for n := 1; n <= 8; n++ {
		ra += cri.At(n)
	}
	ra /= 8

	fmt.Printf("Source: %s\n", name)
	fmt.Printf("CCT:    %.0f K\n", cct)
	fmt.Printf("Ra:     %.1f\n\n", ra)
	tcs := colorimetry.TCS()
	for n := 1; n <= colorimetry.NumTCS; n++ {
		swatch := obs.XYZ(norm, &tcs[n-1]).Hex()
		fmt.Printf("R%-2d %7.1f  %s\n", n, cri.At(n), swatch)
	}
}

// readSpectrum parses a two-column wavelength,power CSV file. A single
// non-numeric header row is tolerated.
func readSpectrum(path string) (colorimetry.Illuminant, error) {
	f, err := os.Open(path)
	if err != nil {
		return colorimetry.Illuminant{}, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return colorimetry.Illuminant{}, err
	}

	var wl, power []float64
	for i, row := range records {
		if len(row) < 2 {
			return colorimetry.Illuminant{}, fmt.Errorf("line %d: want wavelength,power", i+1)
		}
		w, errW := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		p, errP := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if errW != nil || errP != nil {
			if i == 0 {
				continue
			}
			return colorimetry.Illuminant{}, fmt.Errorf("line %d: bad number", i+1)
		}
		wl = append(wl, w)
		power = append(power, p)
	}

	s, err := colorimetry.Resample(wl, power)
	if err != nil {
		return colorimetry.Illuminant{}, err
	}
	return colorimetry.NewIlluminant(s), nil
}
