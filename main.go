// Command marquee scrolls a strip of items across the terminal.
//
// The same binary is built from cmd/marquee; this root package lets
// `go install marquee@latest` style builds work from the module root.
package main

import (
	"os"

	"marquee/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
