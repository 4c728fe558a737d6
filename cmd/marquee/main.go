package main

import (
	"os"

	"marquee/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
