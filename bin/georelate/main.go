package main

import (
	"log"

	"github.com/geotopo/georelate/cmd"
)

func main() {
	err := cmd.Run()
	if err != nil {
		log.Fatal(err)
	}
}
