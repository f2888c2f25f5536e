package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lorekeep/lorekeep/internal/models"
)

func newListCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:       "list <collection>",
		Short:     "Print a collection as a table",
		Args:      cobra.ExactArgs(1),
		ValidArgs: models.Collections(),
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, cleanup, err := openServices(*dataDir)
			if err != nil {
				return err
			}
			defer cleanup()

			svc, ok := svcs.ByCollection(args[0])
			if !ok {
				return fmt.Errorf("unknown collection %q", args[0])
			}
			records, err := svc.List()
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is empty\n", svc.Name())
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				name, _ := rec["name"].(string)
				slug, _ := rec["slug"].(string)
				rows = append(rows, []string{rec.ID(), name, slug})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "Name", "Slug"}, rows))
			return nil
		},
	}
}
