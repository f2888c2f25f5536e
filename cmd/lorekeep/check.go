package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report dangling cross-collection references",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, cleanup, err := openServices(*dataDir)
			if err != nil {
				return err
			}
			defer cleanup()

			violations, err := svcs.CheckIntegrity()
			if err != nil {
				return err
			}
			if len(violations) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "all references resolve")
				return nil
			}

			rows := make([][]string, 0, len(violations))
			for _, v := range violations {
				rows = append(rows, []string{v.Collection, v.RecordID, v.Field, v.Target, v.TargetID})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Collection", "Record", "Field", "Target", "Missing ID"}, rows))
			return fmt.Errorf("%d dangling reference(s)", len(violations))
		},
	}
}
