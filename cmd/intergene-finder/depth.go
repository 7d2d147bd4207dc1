package main

import (
	"context"
	"log"

	"github.com/dmgie/intergene-finder/internal/depth"
)

type depthCmd struct {
	bed     *string
	depths  *[]string
	output  *string
	threads *int

	verbose bool
}

func (c *depthCmd) run() error {
	regions, err := depth.ReadRegionsFile(*c.bed)
	if err != nil {
		return err
	}

	if len(*c.depths) == 1 {
		in, out := (*c.depths)[0], "-"
		if *c.output != "" {
			out = *c.output + depth.Suffix
		}
		st, err := depth.File(regions, in, out)
		if err != nil {
			return err
		}
		if c.verbose {
			log.Printf("%s: %d positions, %d inside a region", in, st.Positions, st.Named)
		}
		return nil
	}

	// one output per input, no shared state besides the regions
	return depth.Run(context.Background(), regions, *c.depths, *c.threads, func(path string, st depth.Stats) {
		if c.verbose {
			log.Printf("wrote %s%s: %d positions, %d inside a region", path, depth.Suffix, st.Positions, st.Named)
		}
	})
}
