// Command phishcheck asks a phishing-detection service about a URL and shows its verdict.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ppiankov/phishcheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// The failure panel is already on stdout
		if !errors.Is(err, cli.ErrCheckFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
