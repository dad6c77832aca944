// Command esa builds and queries an Explicit Semantic Analysis concept
// index from a Wikipedia dump.
//
// Usage:
//
//	esa build --dump enwiki.xml.bz2 --store ./index --labels ./index/labels.gob
//	esa query --store ./index --labels ./index/labels.gob "text to map to concepts"
//	esa query similarity --store ./index --labels ./index/labels.gob "text a" "text b"
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "esa",
		Short:         "Explicit Semantic Analysis index builder and query tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newBuildCmd())
	root.AddCommand(newQueryCmd())
	return root
}
