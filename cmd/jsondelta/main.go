package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "jsondelta",
		Short: "jsondelta — compute and apply structural JSON deltas",
		Long:  "Computes, applies, and reverses jsondiffpatch-compatible deltas between JSON documents.",
	}

	root.AddCommand(
		diffCmd(),
		patchCmd(),
		unpatchCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
