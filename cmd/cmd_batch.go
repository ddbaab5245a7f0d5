package cmd

import (
	"fmt"
	"log"

	"github.com/cheggaaa/pb"

	convert "github.com/geotopo/georelate/geojson"
)

type CmdBatch struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("batch",
		"Relate features against a mask",
		"Scan every feature in a collection for boundary intersections with a mask geometry",
		&CmdBatch{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdBatch) Usage() string {
	return "features.geojson mask.geojson"
}

func (cmd CmdBatch) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Need a feature collection and a mask, Usage: %s", cmd.Usage())
	}

	fc, err := loadFeatures(args[0])
	if err != nil {
		return err
	}
	mask, err := loadGeom(args[1])
	if err != nil {
		return err
	}

	bar := pb.StartNew(len(fc.Features))
	touched := 0
	for _, f := range fc.Features {
		g, err := convert.FeatureGeometry(f)
		if err != nil {
			return err
		}
		sections, err := nodeSections(g, mask, cmd.global.Orient)
		if err != nil {
			return err
		}
		if len(sections) > 0 {
			touched++
		}
		bar.Increment()
	}
	bar.Finish()

	log.Printf("%d of %d features intersect the mask boundary", touched, len(fc.Features))
	return nil
}
