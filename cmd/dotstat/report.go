package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/dotglobe/internal/globe/dotfield"
	"github.com/Faultbox/dotglobe/internal/globe/landmask"
)

// RingStat is one latitude ring's sampling result.
type RingStat struct {
	Ring     int `yaml:"ring"`
	Latitude int `yaml:"lat"`
	Samples  int `yaml:"samples"`
	Dots     int `yaml:"dots"`
}

// Report summarizes a mask and the dot field generated from it.
type Report struct {
	Mask           string     `yaml:"mask"`
	LandPixels     int        `yaml:"land_pixels"`
	EmptyLatitudes int        `yaml:"empty_latitudes"`
	Density        float64    `yaml:"density"`
	Tolerance      float64    `yaml:"tolerance"`
	Samples        int        `yaml:"samples"`
	Dots           int        `yaml:"dots"`
	Rings          []RingStat `yaml:"rings,omitempty"`
}

// buildReport collects totals and, when rings is set, the per-ring counts.
func buildReport(path string, mask *landmask.Mask, field *dotfield.Field,
	cfg dotfield.Config, tolerance float64, rings bool) Report {
	r := Report{
		Mask:           path,
		LandPixels:     mask.LandCount(),
		EmptyLatitudes: mask.EmptyLatitudes(),
		Density:        cfg.Density,
		Tolerance:      tolerance,
		Dots:           field.Len(),
	}

	for i := 0; i < dotfield.Rings; i++ {
		lat := dotfield.RingLatitude(i)
		n := cfg.RingCount(lat)
		r.Samples += n
		if rings {
			r.Rings = append(r.Rings, RingStat{
				Ring:     i,
				Latitude: lat,
				Samples:  n,
				Dots:     field.RingDots(i),
			})
		}
	}
	return r
}

func (r Report) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "mask:\t%s\n", r.Mask)
	fmt.Fprintf(tw, "land pixels:\t%d\n", r.LandPixels)
	fmt.Fprintf(tw, "empty latitudes:\t%d\n", r.EmptyLatitudes)
	fmt.Fprintf(tw, "density:\t%g\n", r.Density)
	fmt.Fprintf(tw, "tolerance:\t%g\n", r.Tolerance)
	fmt.Fprintf(tw, "samples:\t%d\n", r.Samples)
	fmt.Fprintf(tw, "dots:\t%d\n", r.Dots)

	if len(r.Rings) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "RING\tLAT\tSAMPLES\tDOTS")
		for _, s := range r.Rings {
			fmt.Fprintf(tw, "%d\t%d\t%d\t%d\n", s.Ring, s.Latitude, s.Samples, s.Dots)
		}
	}
	return tw.Flush()
}

func (r Report) writeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
