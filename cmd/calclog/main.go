package main

import (
	"os"

	"github.com/ariel-frischer/calclog/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
