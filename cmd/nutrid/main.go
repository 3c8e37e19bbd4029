package main

import (
	"log"

	"github.com/nutrisense/nutrisense/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
