package main

import (
	"fmt"

	"github.com/arborly/jsondelta"
	"github.com/spf13/cobra"
)

func unpatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpatch <right> <delta>",
		Short: "Reverse a delta against right, recovering left",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rightBytes, err := readArg(args[0])
			if err != nil {
				return err
			}
			deltaBytes, err := readArg(args[1])
			if err != nil {
				return err
			}

			out, err := jsondelta.UnpatchJSON(rightBytes, deltaBytes)
			if err != nil {
				return fmt.Errorf("unpatch: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
