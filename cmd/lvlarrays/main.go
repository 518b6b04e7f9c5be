// Command lvlarrays runs the sequence algorithms of lvlath-arrays from the
// command line.
//
//	lvlarrays max-subarray --nums=-2,1,-3,4,-1,2,1,-5,4
//	lvlarrays find-duplicate --nums=1,3,4,2,2
//	lvlarrays examples
//	lvlarrays random --kind duplicate --n 8 --seed 3
package main

import (
	"os"

	"github.com/fatih/color"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd(version, productionLogger).Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// printError writes err to stderr with a red prefix.
func printError(err error) {
	k := color.RedString("[error] ")
	_, _ = color.Error.Write([]byte(k + err.Error() + "\n"))
}
