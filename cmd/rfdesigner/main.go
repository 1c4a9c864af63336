//----------------------------------------------------------------------
// This file is part of antgen.
// Copyright (C) 2024-present Bernd Fix >Y<,  DO3YQ
//
// antgen is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// antgen is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kb9wvr/rfsynth/lib"
)

// rfdesigner is a thin command-line host over the synthesis core: it
// assembles one specification record from flags, calls the matching
// dispatcher and prints the resulting schematic's component list. It
// owns no persistence beyond the optional config file; the core
// package stays silent and does no I/O of its own.

func main() {
	var (
		config   string
		family   string // filter | matching | combiner | attenuator
		topology string

		class    string
		response string
		order    int
		fc       float64
		bw       float64
		rippleDB float64
		stopDB   float64

		zs, zl    float64
		realizStr string

		freq     float64
		z0       float64
		nOutputs int
		nStages  int
		alpha    float64

		attenDB float64
	)
	flag.StringVar(&config, "config", "", "solver tuning configuration file")
	flag.StringVar(&family, "family", "filter", "specification family: filter|matching|combiner|attenuator")
	flag.StringVar(&topology, "topology", "", "topology tag within the chosen family")

	flag.StringVar(&class, "class", "LP", "filter class: LP|HP|BP|BS")
	flag.StringVar(&response, "response", "Butterworth", "filter response: Butterworth|Chebyshev")
	flag.IntVar(&order, "order", 3, "filter order")
	flag.Float64Var(&fc, "fc", 1e9, "center/cutoff frequency (Hz)")
	flag.Float64Var(&bw, "bw", 0, "bandwidth (Hz), BP/BS only")
	flag.Float64Var(&rippleDB, "ripple", 0.1, "passband ripple (dB), Chebyshev/elliptic")
	flag.Float64Var(&stopDB, "stopband", 40, "stopband attenuation (dB), elliptic")

	flag.Float64Var(&zs, "zs", 50, "source impedance (Ω)")
	flag.Float64Var(&zl, "zl", 50, "load impedance (Ω), matching only")
	flag.StringVar(&realizStr, "realization", "Lumped", "realization: Lumped|Ideal|Microstrip")

	flag.Float64Var(&freq, "freq", 1e9, "operating frequency (Hz), combiner only")
	flag.Float64Var(&z0, "z0", 50, "reference impedance (Ω), combiner/attenuator")
	flag.IntVar(&nOutputs, "noutputs", 2, "output count, Bagley divider only")
	flag.IntVar(&nStages, "nstages", 1, "isolator stage count, multistage Wilkinson only")
	flag.Float64Var(&alpha, "alpha", 0.01, "isolator line loss (Np/m), multistage Wilkinson only")

	flag.Float64Var(&attenDB, "atten", 10, "attenuation (dB), attenuator only")

	flag.Parse()

	if len(config) > 0 {
		if err := lib.ReadConfig(config); err != nil {
			log.Fatal(err)
		}
	}

	var (
		sch *lib.Schematic
		err error
	)
	switch family {
	case "filter":
		spec := lib.FilterSpec{
			Topology:    lib.FilterTopology(topology),
			Class:       lib.FilterClass(class),
			Response:    lib.Response(response),
			Order:       order,
			Fc:          fc,
			Bandwidth:   bw,
			RippleDB:    rippleDB,
			StopbandDB:  stopDB,
			Zs:          zs,
			Realization: lib.Realization(realizStr),
		}
		sch, err = lib.SynthesizeFilter(spec)
	case "matching":
		spec := lib.MatchingSpec{
			Topology:    lib.MatchingTopology(topology),
			Freq:        fc,
			Zs:          zs,
			Zl:          complex(zl, 0),
			Realization: lib.Realization(realizStr),
		}
		sch, err = lib.SynthesizeMatching(spec)
	case "combiner":
		spec := lib.CombinerSpec{
			Topology: lib.CombinerTopology(topology),
			Freq:     freq,
			Z0:       z0,
			NOutputs: nOutputs,
			NStages:  nStages,
			Alpha:    alpha,
			PowerDB:  make([]float64, 3),
		}
		sch, err = lib.SynthesizeCombiner(spec)
	case "attenuator":
		spec := lib.AttenuatorSpec{
			Topology:      lib.AttenuatorTopology(topology),
			AttenuationDB: attenDB,
			Z0:            z0,
		}
		sch, err = lib.SynthesizeAttenuator(spec)
	default:
		log.Fatalf("unknown family %q (want filter|matching|combiner|attenuator)", family)
	}
	if err != nil {
		log.Fatal(err)
	}

	dumpSchematic(os.Stdout, sch)
}

// dumpSchematic prints a human-readable component/wire listing. This
// is a demonstrator, not a netlist exporter: a real export/render
// format is out of scope for the core and is left to a consumer.
func dumpSchematic(w *os.File, sch *lib.Schematic) {
	fmt.Fprintf(w, "components: %d, nodes: %d, wires: %d\n",
		len(sch.Components), len(sch.Nodes), len(sch.Wires))
	for _, c := range sch.Components {
		fmt.Fprintf(w, "  %-6s %-16s @%s rot=%d°", c.ID, c.Kind, c.Pos, c.Rotation)
		for _, k := range []string{"R", "L", "C", "W", "Z0", "E", "Ze", "Zo", "S11", "S12", "S21", "S22", "Error"} {
			if v := c.Param(k); v != "" {
				fmt.Fprintf(w, " %s=%s", k, v)
			}
		}
		fmt.Fprintln(w)
	}
}
