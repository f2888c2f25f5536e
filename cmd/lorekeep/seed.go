package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lorekeep/lorekeep/internal/docstore"
	"github.com/lorekeep/lorekeep/internal/storage"
)

func newSeedCommand(dataDir *string) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate empty collections from a YAML seed file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(*dataDir, file, cmd)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "seed.yaml", "Seed file to load")
	return cmd
}

func runSeed(dataDir, file string, cmd *cobra.Command) error {
	svcs, cleanup, err := openServices(dataDir)
	if err != nil {
		return err
	}
	defer cleanup()

	report, err := svcs.SeedFromFile(file)
	if err != nil {
		return err
	}
	total := 0
	for name, n := range report.Created {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d records created\n", name, n)
		total += n
	}
	if len(report.Skipped) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "skipped (not empty): %s\n", strings.Join(report.Skipped, ", "))
	}
	if total == 0 && len(report.Skipped) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "nothing to seed")
	}
	return nil
}

// openServices opens the store in dataDir and wires the entity services.
func openServices(dataDir string) (*storage.Services, func(), error) {
	store, err := docstore.Open(dataDir)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			slog.Error("Failed to close store", "err", err)
		}
	}
	return storage.NewServices(store), cleanup, nil
}
