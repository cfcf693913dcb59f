// Command du-hist reports historical disk usage: for each date in a set of
// directory trees, how many bytes would remain if everything older were deleted.
package main

import (
	"fmt"
	"os"

	"github.com/eunmann/du-hist/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
