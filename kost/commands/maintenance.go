package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"kostmanager/kost"
	"kostmanager/kost/engine"
)

func MaintenanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maintenance",
		Short: "List maintenance requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEngine(cmd)
			if err != nil {
				return err
			}

			fmt.Printf("%-36s  %-6s  %-25s  %-12s  %-11s  %s\n",
				"ID", "Room", "Title", "Date", "Status", "Priority")
			for _, r := range e.Store().Requests() {
				number := r.RoomID
				if room, ok := e.Store().GetRoom(r.RoomID); ok {
					number = room.Number
				}
				fmt.Printf("%-36s  %-6s  %-25s  %-12s  %-11s  %s\n",
					r.ID, number, r.Title, formatDate(r.Date), r.Status, r.Priority)
			}
			return nil
		},
	}

	addDataFlags(cmd)

	return cmd
}

func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [room-id] [title]",
		Short: "Open a maintenance request for a room",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			description, _ := cmd.Flags().GetString("description")
			priority, _ := cmd.Flags().GetString("priority")
			tenantID, _ := cmd.Flags().GetString("tenant")

			req, err := e.CreateMaintenanceRequest(engine.RequestInput{
				RoomID:      args[0],
				TenantID:    tenantID,
				Title:       args[1],
				Description: description,
				Priority:    kost.Priority(priority),
			})
			if err != nil {
				return err
			}

			fmt.Printf("Opened request %s (%s, %s)\n", req.ID, req.Title, req.Priority)
			return saveIfRequested(cmd, e)
		},
	}

	addDataFlags(cmd)
	addSaveFlag(cmd)
	cmd.Flags().String("description", "", "Request description")
	cmd.Flags().String("priority", "", "Priority (low|medium|high, default medium)")
	cmd.Flags().String("tenant", "", "Reporting tenant id")

	return cmd
}
