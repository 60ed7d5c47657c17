// Command vocabctl inspects the vocabulary corpus and runs the quiz and
// matching-game generators offline.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
