// hcube - CLI for exploring Happy Cube puzzle pieces.
package main

import (
	"github.com/SeamusWaldron/hcube/internal/cli"
)

func main() {
	cli.Execute()
}
