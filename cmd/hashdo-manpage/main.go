package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/hashdo/internal/cli"
	"github.com/arthur-debert/hashdo/internal/version"
)

// Writes the hashdo(1) man page to stdout, or one page per command into the
// directory given as the only argument.
func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "HASHDO",
		Section: "1",
		Source:  "hashdo " + version.Version,
		Manual:  "hashdo manual",
	}

	var err error
	if len(os.Args) > 1 {
		err = doc.GenManTree(rootCmd, header, os.Args[1])
	} else {
		err = doc.GenMan(rootCmd, header, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
