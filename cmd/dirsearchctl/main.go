// dirsearchctl normalizes text, runs directory searches and profile resolution
// against local snapshot files, and loads snapshots into the store.
package main

import (
	"os"

	"github.com/kailas-cloud/dirsearch/cmd/dirsearchctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
