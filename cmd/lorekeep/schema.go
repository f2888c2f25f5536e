package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lorekeep/lorekeep/internal/models"
)

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "schema [collection]",
		Short:     "Print the JSON Schema of one or all record models",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: models.Collections(),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := models.Collections()
			if len(args) == 1 {
				names = args
			}
			out := make(map[string]any, len(names))
			for _, name := range names {
				schema, err := models.SchemaFor(name)
				if err != nil {
					return err
				}
				out[name] = schema
			}
			var payload any = out
			if len(names) == 1 {
				payload = out[names[0]]
			}
			data, err := json.MarshalIndent(payload, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
