// spahost serves a single-page application bundle over HTTP.
// Single binary, env-only config — the entry document at /, every other
// asset by path.
package main

import (
	"os"

	"github.com/corey/spahost/cmd/spahost/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
