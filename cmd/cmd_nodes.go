package cmd

import (
	"fmt"
	"log"
)

type CmdNodes struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("nodes",
		"Print node sections",
		"Compute and print the node sections where two geometries intersect",
		&CmdNodes{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdNodes) Usage() string {
	return "a.geojson b.geojson"
}

func (cmd CmdNodes) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Need two input files, Usage: %s", cmd.Usage())
	}

	ga, err := loadGeom(args[0])
	if err != nil {
		return err
	}
	gb, err := loadGeom(args[1])
	if err != nil {
		return err
	}

	sections, err := nodeSections(ga, gb, cmd.global.Orient)
	if err != nil {
		return err
	}

	log.Printf("Found %d node sections", len(sections))
	for _, n := range sections {
		fmt.Println(n.String())
	}
	return nil
}
