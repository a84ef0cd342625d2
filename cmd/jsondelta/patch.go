package main

import (
	"fmt"

	"github.com/arborly/jsondelta"
	"github.com/spf13/cobra"
)

func patchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patch <left> <delta>",
		Short: "Apply a delta to left, producing right",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			leftBytes, err := readArg(args[0])
			if err != nil {
				return err
			}
			deltaBytes, err := readArg(args[1])
			if err != nil {
				return err
			}

			out, err := jsondelta.PatchJSON(leftBytes, deltaBytes)
			if err != nil {
				return fmt.Errorf("patch: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
