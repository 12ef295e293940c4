package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"kostmanager/internal/seed"
	"kostmanager/kost"
)

func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed [file]",
		Short: "Write the demo data set to a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := kost.WriteSnapshotFile(args[0], seed.Snapshot()); err != nil {
				return err
			}
			fmt.Printf("Wrote demo snapshot to %s\n", args[0])
			return nil
		},
	}
}
