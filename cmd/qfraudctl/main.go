// Command qfraudctl is the operator CLI for the fraud detection service. It
// scores demo transactions locally or against a running server, prints the
// benchmark comparison, tails detection events and issues dev certificates.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
