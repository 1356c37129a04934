package main

import (
	"os"

	"github.com/gomagick/gomagick/pkg/cli"
)

func main() {
	os.Exit(cli.Run())
}
