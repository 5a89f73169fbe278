// Command tablelayout solves declarative table layouts and previews them.
//
// Usage:
//
//	tablelayout solve [flags] FILE...     Print cell placements
//	tablelayout preview [flags] FILE      Draw the layout in the terminal
//	tablelayout render -o out.png FILE    Draw the layout to a PNG image
//	tablelayout version                   Print version information
//
// Layout files are YAML, TOML or JSON, chosen by extension. Settings come
// from ./tablelayout.yaml (or --config), TABLELAYOUT_* environment variables
// and flags, in increasing priority.
package main

import (
	"fmt"
	"os"
)

var version = "0.1.0"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
