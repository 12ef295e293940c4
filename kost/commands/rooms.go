package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"kostmanager/kost"
	"kostmanager/kost/aggregate"
	"kostmanager/kost/engine"
)

func RoomsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "List rooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			search, _ := cmd.Flags().GetString("search")
			status, _ := cmd.Flags().GetString("status")

			rooms := aggregate.FilterRooms(e.Store().Rooms(), aggregate.RoomFilter{
				Search: search,
				Status: kost.RoomStatus(status),
			})

			fmt.Printf("%-36s  %-6s  %-5s  %-8s  %-14s  %-11s  %s\n",
				"ID", "Number", "Floor", "Type", "Price", "Status", "Tenant")
			for _, r := range rooms {
				fmt.Printf("%-36s  %-6s  %-5s  %-8s  %-14s  %-11s  %s\n",
					r.ID, r.Number, r.Floor, r.Type, formatRupiah(r.Price), r.Status, orDash(r.TenantID))
			}
			return nil
		},
	}

	addDataFlags(cmd)
	cmd.Flags().String("search", "", "Match room number or floor")
	cmd.Flags().String("status", "", "Filter by status (occupied|vacant|maintenance)")

	return cmd
}

func AddRoomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-room",
		Short: "Add a new room",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			number, _ := cmd.Flags().GetString("number")
			floor, _ := cmd.Flags().GetString("floor")
			roomType, _ := cmd.Flags().GetString("type")
			price, _ := cmd.Flags().GetFloat64("price")
			facilities, _ := cmd.Flags().GetStringSlice("facilities")
			tenantID, _ := cmd.Flags().GetString("tenant")

			room, err := e.CreateRoom(engine.RoomInput{
				Number:     number,
				Floor:      floor,
				Type:       kost.RoomType(roomType),
				Price:      price,
				Facilities: facilities,
				TenantID:   tenantID,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Created room %s (number %s, floor %s, %s)\n", room.ID, room.Number, room.Floor, room.Status)
			return saveIfRequested(cmd, e)
		},
	}

	addDataFlags(cmd)
	addSaveFlag(cmd)
	cmd.Flags().String("number", "", "Room number")
	cmd.Flags().String("floor", "", "Floor")
	cmd.Flags().String("type", "single", "Room type (single|double|deluxe)")
	cmd.Flags().Float64("price", 0, "Monthly price")
	cmd.Flags().StringSlice("facilities", nil, "Facility labels")
	cmd.Flags().String("tenant", "", "Tenant id to assign on creation")

	return cmd
}

func AssignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign [room-id] [tenant-id]",
		Short: "Assign a tenant to a vacant room",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			if err := e.AssignTenant(args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Assigned tenant %s to room %s\n", args[1], args[0])
			return saveIfRequested(cmd, e)
		},
	}

	addDataFlags(cmd)
	addSaveFlag(cmd)

	return cmd
}

func VacateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vacate [room-id]",
		Short: "Vacate an occupied room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			if err := e.VacateRoom(args[0]); err != nil {
				return err
			}
			fmt.Printf("Vacated room %s\n", args[0])
			return saveIfRequested(cmd, e)
		},
	}

	addDataFlags(cmd)
	addSaveFlag(cmd)

	return cmd
}
