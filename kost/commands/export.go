package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kostmanager/internal/export"
)

func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export filtered payments as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			rows, err := paymentRows(cmd, e)
			if err != nil {
				return err
			}

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("failed to create %s: %v", args[0], err)
			}
			defer f.Close()

			if err := export.Payments(f, rows); err != nil {
				return err
			}
			fmt.Printf("Exported %d payments to %s\n", len(rows), args[0])
			return nil
		},
	}

	addDataFlags(cmd)
	addPaymentFilterFlags(cmd)

	return cmd
}
