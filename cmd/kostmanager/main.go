package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"kostmanager/kost/commands"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "kostmanager",
		Short: "Boarding-house management",
	}

	rootCmd.AddCommand(
		commands.RoomsCmd(),
		commands.AddRoomCmd(),
		commands.AssignCmd(),
		commands.VacateCmd(),
		commands.TenantsCmd(),
		commands.AddTenantCmd(),
		commands.PaymentsCmd(),
		commands.RecordCmd(),
		commands.MaintenanceCmd(),
		commands.ReportCmd(),
		commands.SummaryCmd(),
		commands.RemindCmd(),
		commands.ExportCmd(),
		commands.SettingsCmd(),
		commands.SeedCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
