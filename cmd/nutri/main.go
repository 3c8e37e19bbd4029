package main

import (
	"github.com/nutrisense/nutrisense/pkg/cli"
)

func main() {
	cli.Execute()
}
