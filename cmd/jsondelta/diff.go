package main

import (
	"fmt"

	"github.com/arborly/jsondelta"
	"github.com/spf13/cobra"
)

func diffCmd() *cobra.Command {
	var (
		excludePaths  []string
		ignoreMissing bool
		ignoreNew     bool
		simpleArrays  bool
		showStats     bool
		pretty        bool
	)

	cmd := &cobra.Command{
		Use:   "diff <left> <right>",
		Short: "Compute the delta from left to right",
		Long:  "Reads two JSON documents (a file path or \"-\" for stdin) and prints the delta that transforms left into right.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			leftBytes, err := readArg(args[0])
			if err != nil {
				return err
			}
			rightBytes, err := readArg(args[1])
			if err != nil {
				return err
			}

			var behaviors jsondelta.DiffBehavior
			if ignoreMissing {
				behaviors |= jsondelta.IgnoreMissingProperties
			}
			if ignoreNew {
				behaviors |= jsondelta.IgnoreNewProperties
			}
			arrayMode := jsondelta.Efficient
			if simpleArrays {
				arrayMode = jsondelta.Simple
			}

			var stats jsondelta.Stats
			opts := []jsondelta.DiffOption{
				jsondelta.WithExcludePaths(excludePaths...),
				jsondelta.WithDiffBehaviors(behaviors),
				jsondelta.WithArrayDiffMode(arrayMode),
				jsondelta.WithStats(&stats),
			}

			deltaBytes, err := jsondelta.DiffJSON(leftBytes, rightBytes, opts...)
			if err != nil {
				return fmt.Errorf("diff: %w", err)
			}

			if pretty {
				var delta interface{}
				if err := unmarshalDelta(deltaBytes, &delta); err != nil {
					return err
				}
				s, err := jsondelta.FormatPrettyString(delta, false)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), s)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), string(deltaBytes))
			}

			if showStats {
				fmt.Fprint(cmd.ErrOrStderr(), jsondelta.FormatPrettyStats(&stats))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&excludePaths, "exclude", nil, "object paths to skip while diffing, dot-joined (repeatable)")
	cmd.Flags().BoolVar(&ignoreMissing, "ignore-missing", false, "don't record deletes for properties absent from right")
	cmd.Flags().BoolVar(&ignoreNew, "ignore-new", false, "don't record adds for properties absent from left")
	cmd.Flags().BoolVar(&simpleArrays, "simple-arrays", false, "replace unequal arrays wholesale instead of computing a move-aware delta")
	cmd.Flags().BoolVar(&showStats, "stats", false, "print a summary of adds/removes/moves/edits to stderr")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "print a human-readable report instead of raw JSON")
	return cmd
}
