// Command ngon draws a regular polygon filled with a rainbow triangle fan.
//
// Usage:
//
//	ngon                         open a window (Up/Right/= add a side, Down removes one)
//	ngon --backend ebiten        open the window with the ebiten backend
//	ngon render -o hexagon.png   render a PNG without a window
//	ngon mesh --sides 5          print the generated mesh as YAML
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ngon:", err)
		os.Exit(1)
	}
}
